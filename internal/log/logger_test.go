package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerAssignsSequentialSeq(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDrawEvent(1, "Soldier"))
	l.Log(NewDrawEvent(1, "Archer"))

	events := l.Events()
	require.Len(t, events, 2)
	require.Equal(t, 1, events[0].Seq)
	require.Equal(t, 2, events[1].Seq)
}

func TestMemoryLoggerEventsOfTypeFilters(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDrawEvent(1, "Soldier"))
	l.Log(NewCardDiedEvent(2, "Soldier", "sent to grave"))
	l.Log(NewDrawEvent(3, "Archer"))

	draws := l.EventsOfType(EventDraw)
	require.Len(t, draws, 2)
	require.Equal(t, "Archer", draws[1].Card)
}

func TestMemoryLoggerLastEvent(t *testing.T) {
	l := NewMemoryLogger()
	require.Equal(t, GameEvent{}, l.LastEvent())

	l.Log(NewShuffleEvent(1))
	l.Log(NewRoundStartEvent(2))
	require.Equal(t, EventRoundStart, l.LastEvent().Type)
}

func TestTextLoggerWritesFormattedLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewDamageHeroEvent(5, 80, 920, "unavoidable scaling damage"))

	require.Contains(t, buf.String(), "R5")
	require.Contains(t, buf.String(), "hero takes 80 damage (hp 920, unavoidable scaling damage)")
	require.Len(t, l.Events(), 1, "TextLogger must also record into its embedded MemoryLogger")
}

func TestEventTypeStringCoversEveryConstant(t *testing.T) {
	for et := EventRoundStart; et <= EventTrialEnd; et++ {
		require.NotContains(t, et.String(), "EventType(")
	}
}
