package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/score"
)

func noteEl(offset, dur float64, measure int, pitches ...score.Pitch) score.Element {
	kind := score.KindNote
	if len(pitches) > 1 {
		kind = score.KindChord
	}
	return score.Element{
		Kind:             kind,
		Pitches:          pitches,
		OffsetQuarters:   offset,
		DurationQuarters: dur,
		MeasureNumber:    measure,
	}
}

func restEl(offset, dur float64, measure int) score.Element {
	return score.Element{
		Kind:             score.KindRest,
		OffsetQuarters:   offset,
		DurationQuarters: dur,
		MeasureNumber:    measure,
	}
}

func pitch(name string, octave, midi int) score.Pitch {
	return score.Pitch{Name: name, Octave: octave, Midi: midi, Frequency: 440}
}

func TestQuarterLengthToSeconds(t *testing.T) {
	cases := []struct {
		bpm      float64
		quarters float64
		expected float64
	}{
		{120, 1, 0.5},
		{120, 4, 2},
		{60, 1, 1},
		{90, 3, 2},
		{240, 0.5, 0.125},
		{100, 0, 0},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v quarters at %v bpm", c.quarters, c.bpm)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expected, QuarterLengthToSeconds(c.bpm, c.quarters))
		})
	}
}

func TestChordDecomposition(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{
		ID: "P1",
		Elements: []score.Element{
			noteEl(2.0, 1.0, 1, pitch("C", 4, 60), pitch("E", 4, 64), pitch("G", 4, 67)),
		},
	}}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tl.Events, 3)

	for i, expectedPitch := range []string{"C", "E", "G"} {
		e := tl.Events[i]
		assert.Equal(model.EventChordNote, e.Kind)
		assert.Equal(expectedPitch, e.Pitch)
		assert.Equal(2.0, e.StartQuarters)
		assert.Equal(1.0, e.StartSeconds)
		assert.Equal(0.5, e.DurationSeconds)
		assert.Equal(1, *e.MeasureNumber)
		assert.Equal(64, *e.Velocity)
	}
}

func TestTwoPartMergeKeepsEncounterOrderOnTies(t *testing.T) {
	partA := score.Part{ID: "A", Elements: []score.Element{
		noteEl(0, 1, 1, pitch("C", 4, 60)),
		noteEl(1, 2, 1, pitch("E", 4, 64)),
	}}
	partB := score.Part{ID: "B", Elements: []score.Element{
		restEl(0, 4, 1),
	}}
	s := &score.Score{Parts: []score.Part{partA, partB}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tl.Events, 3)

	// part A's note at 0 comes before part B's rest at 0
	assert.Equal(model.EventNote, tl.Events[0].Kind)
	assert.Equal(0.0, tl.Events[0].StartSeconds)
	assert.Equal(0.5, tl.Events[0].DurationSeconds)

	assert.Equal(model.EventRest, tl.Events[1].Kind)
	assert.Equal(0.0, tl.Events[1].StartSeconds)
	assert.Equal(2.0, tl.Events[1].DurationSeconds)

	assert.Equal(model.EventNote, tl.Events[2].Kind)
	assert.Equal(0.5, tl.Events[2].StartSeconds)
	assert.Equal(1.0, tl.Events[2].DurationSeconds)

	assert.Equal(2.0, tl.TotalDuration)
}

func TestTotalDurationOfEmptyTimelineIsZero(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{ID: "P1"}}}
	tl, err := Build(s, 120)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(tl.Events)
	assert.Equal(0.0, tl.TotalDuration)
}

func TestBuildFailsOnScoreWithoutParts(t *testing.T) {
	_, err := Build(&score.Score{}, 120)
	assert.ErrorIs(t, err, score.ErrMalformed)
}

func TestElementsWithoutDurationAreExcluded(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{
		ID: "P1",
		Elements: []score.Element{
			noteEl(0, -1, 1, pitch("C", 4, 60)),
			noteEl(0, 1, 1, pitch("D", 4, 62)),
		},
	}}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tl.Events, 1)
	assert.Equal("D", tl.Events[0].Pitch)
}

func TestRestsCarryNoPitchFields(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{
		ID:       "P1",
		Elements: []score.Element{restEl(0, 1, 1)},
	}}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tl.Events, 1)
	assert.Empty(tl.Events[0].Pitch)
	assert.Nil(tl.Events[0].Octave)
	assert.Nil(tl.Events[0].Velocity)
}

func TestDetachedElementHasNoMeasureNumber(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{
		ID:       "P1",
		Elements: []score.Element{noteEl(0, 1, 0, pitch("C", 4, 60))},
	}}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Nil(tl.Events[0].MeasureNumber)
}

func TestQueryUsesOpenIntervalOverlap(t *testing.T) {
	s := &score.Score{Parts: []score.Part{{
		ID: "P1",
		Elements: []score.Element{
			noteEl(0, 2, 1, pitch("C", 4, 60)),   // 0.0s..1.0s, ends exactly at window start
			noteEl(1, 2, 1, pitch("D", 4, 62)),   // 0.5s..1.5s, overlaps
			noteEl(4, 2, 1, pitch("E", 4, 64)),   // starts exactly at window end
			noteEl(2.5, 1, 1, pitch("F", 4, 65)), // 1.25s..1.75s, overlaps
		},
	}}}

	tl, err := Build(s, 120)
	assert := assert.New(t)
	assert.NoError(err)

	res := Query(tl, 1.0, 2.0)
	assert.Len(res, 2)
	assert.Equal("D", res[0].Pitch)
	assert.Equal("F", res[1].Pitch)

	all := QueryFrom(tl, 0)
	assert.Len(all, 4)
}
