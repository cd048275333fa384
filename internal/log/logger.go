package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording trial events. A nil
// EventLogger is valid everywhere one is accepted: callers check for
// nil before logging so the common high-iteration path pays no cost.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("R%-3d %-14s %s", e.Round, e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRoundStartEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d ===", round),
	}
}

func NewDrawEvent(round int, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("draws %s", cardName),
	}
}

func NewCardPlayedEvent(round int, cardName string, atk, hp, field int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardPlayed,
		Card:    cardName,
		Details: fmt.Sprintf("%s enters the field at position %d (atk %d, hp %d)", cardName, field, atk, hp),
	}
}

func NewBuffAppliedEvent(round int, cardName, buff string, level int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventBuffApplied,
		Card:    cardName,
		Details: fmt.Sprintf("%s gains %s %d", cardName, buff, level),
	}
}

func NewBuffRemovedEvent(round int, cardName, buff string, level int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventBuffRemoved,
		Card:    cardName,
		Details: fmt.Sprintf("%s loses %s %d", cardName, buff, level),
	}
}

func NewDamageCardEvent(round int, cardName string, dmg, hpAfter int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDamageCard,
		Card:    cardName,
		Details: fmt.Sprintf("%s takes %d damage (hp %d)", cardName, dmg, hpAfter),
	}
}

func NewDamageHeroEvent(round int, dmg, hpAfter int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDamageHero,
		Details: fmt.Sprintf("hero takes %d damage (hp %d, %s)", dmg, hpAfter, reason),
	}
}

func NewDamageDemonEvent(round int, dmg, hpAfter int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDamageDemon,
		Details: fmt.Sprintf("demon takes %d damage (hp %d)", dmg, hpAfter),
	}
}

func NewCardDiedEvent(round int, cardName, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardDied,
		Card:    cardName,
		Details: fmt.Sprintf("%s dies (%s)", cardName, reason),
	}
}

func NewCardResurrectedEvent(round int, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardResurrected,
		Card:    cardName,
		Details: fmt.Sprintf("%s is resurrected", cardName),
	}
}

func NewCardExiledEvent(round int, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardExiled,
		Card:    cardName,
		Details: fmt.Sprintf("%s is exiled back into the deck", cardName),
	}
}

func NewCardReanimatedEvent(round int, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardReanimated,
		Card:    cardName,
		Details: fmt.Sprintf("%s is reanimated from the grave", cardName),
	}
}

func NewRuneActivatedEvent(round int, runeName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRuneActivated,
		Details: fmt.Sprintf("rune %s activates", runeName),
	}
}

func NewRuneDeactivatedEvent(round int, runeName string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRuneDeactivated,
		Details: fmt.Sprintf("rune %s deactivates", runeName),
	}
}

func NewHealEvent(round int, target string, amount int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventHeal,
		Card:    target,
		Details: fmt.Sprintf("%s heals %d", target, amount),
	}
}

func NewShuffleEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventShuffle,
		Details: "deck shuffled",
	}
}

func NewTrialEndEvent(round, dmgDone int, heroAlive bool) GameEvent {
	status := "hero survived"
	if !heroAlive {
		status = "hero died"
	}
	return GameEvent{
		Round:   round,
		Type:    EventTrialEnd,
		Details: fmt.Sprintf("trial ended (%s, %d damage dealt)", status, dmgDone),
	}
}
