package scenario

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/chain/dt"
	"github.com/tychoish/chain/ers"
	"github.com/tychoish/chain/internal/testt"
)

func TestParse(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		s, err := Parse([]byte("name: x\nvalues: [1, 2]\nsteps:\n  - op: push_back\n    value: 3\n"), FormatYAML)
		require.NoError(t, err)
		expected := &Script{Name: "x", Values: []int{1, 2}, Steps: []Step{{Op: OpPushBack, Value: 3}}}
		if diff := cmp.Diff(expected, s); diff != "" {
			t.Fatalf("script (-want +got):\n%s", diff)
		}
	})
	t.Run("TOML", func(t *testing.T) {
		s, err := Parse([]byte("name = \"y\"\n[[steps]]\nop = \"binary_search\"\nvalue = 2\nfound = false\n"), FormatTOML)
		require.NoError(t, err)
		require.Len(t, s.Steps, 1)
		assert.Equal(t, OpBinarySearch, s.Steps[0].Op)
		require.NotNil(t, s.Steps[0].Found)
		assert.False(t, *s.Steps[0].Found)
	})
	t.Run("UnknownOp", func(t *testing.T) {
		_, err := Parse([]byte("steps:\n  - op: shuffle\n"), FormatYAML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
		assert.Contains(t, err.Error(), "shuffle")
	})
	t.Run("UnknownErrorKind", func(t *testing.T) {
		_, err := Parse([]byte("[[steps]]\nop = \"sort\"\nexpect_error = \"boom\"\n"), FormatTOML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("UnknownFields", func(t *testing.T) {
		_, err := Parse([]byte("steps:\n  - op: sort\n    colour: red\n"), FormatYAML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)

		_, err = Parse([]byte("colour = \"red\"\n"), FormatTOML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte("steps: ["), FormatYAML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
		_, err = Parse([]byte("steps = ["), FormatTOML)
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
		_, err = Parse([]byte("{}"), Format("json"))
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("FormatOf", func(t *testing.T) {
		for path, expected := range map[string]Format{
			"a.yaml":     FormatYAML,
			"b.YML":      FormatYAML,
			"dir/c.toml": FormatTOML,
		} {
			f, err := FormatOf(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, f, path)
		}
		_, err := FormatOf("script.json")
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("LoadFS", func(t *testing.T) {
		fsys := fstest.MapFS{
			"scripts/small.yml": &fstest.MapFile{Data: []byte("values: [2]\nsteps:\n  - op: pop_front\n")},
		}
		s, err := LoadFS(fsys, "scripts/small.yml")
		require.NoError(t, err)
		assert.Equal(t, "small", s.Name)
		assert.Equal(t, []int{2}, s.Values)

		_, err = LoadFS(fsys, "scripts/missing.yml")
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("Fixtures", func(t *testing.T) {
		for _, path := range []string{"testdata/basic.yaml", "testdata/underflow.toml"} {
			t.Run(path, func(t *testing.T) {
				s, err := Load(path)
				require.NoError(t, err)

				report, err := Run(s)
				require.NoError(t, err)
				assert.Len(t, report.Steps, len(s.Steps))
				assert.NoError(t, report.Final.Integrity)
			})
		}
	})
	t.Run("Report", func(t *testing.T) {
		s, err := Load("testdata/basic.yaml")
		require.NoError(t, err)
		report, err := Run(s)
		require.NoError(t, err)

		assert.Equal(t, "basic", report.Name)
		assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, report.Values)
		assert.Equal(t, dt.OrderUnknown, report.Final.Order)
		assert.Equal(t, 6, report.Final.Front)

		first := report.Steps[0]
		assert.False(t, first.Ok())
		assert.ErrorIs(t, first.Err, ers.ErrNotSorted)
		assert.Nil(t, first.Found)

		search := report.Steps[4]
		assert.Equal(t, OpBinarySearch, search.Op)
		require.NotNil(t, search.Found)
		assert.True(t, *search.Found)
		assert.Equal(t, dt.OrderSorted, search.Stats.Order)
	})
	t.Run("UnexpectedError", func(t *testing.T) {
		s := &Script{Steps: []Step{{Op: OpPushBack, Value: 1}, {Op: OpPopFront}, {Op: OpPopFront}, {Op: OpSort}}}
		report, err := Run(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "step 2 (pop_front)")
		assert.Len(t, report.Steps, 3)
		assert.ErrorIs(t, report.Steps[2].Err, ers.ErrUnderflow)
		assert.Equal(t, 0, report.Final.Size)
	})
	t.Run("MissingError", func(t *testing.T) {
		s := &Script{Values: []int{1}, Steps: []Step{{Op: OpRemoveAt, Index: 0, ExpectError: ExpectOutOfRange}}}
		_, err := Run(s)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.Contains(t, err.Error(), "out_of_range")
	})
	t.Run("FoundMismatch", func(t *testing.T) {
		no := false
		s := &Script{Values: []int{1, 2}, Steps: []Step{{Op: OpBinarySearch, Value: 2, Found: &no}}}
		_, err := Run(s)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
	})
	t.Run("CheckMismatch", func(t *testing.T) {
		s := &Script{Values: []int{1, 2}, Steps: []Step{{Op: OpCheck, Values: []int{2, 1}}}}
		_, err := Run(s)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)

		s = &Script{Steps: []Step{{Op: OpCheck, Values: []int{}}}}
		_, err = Run(s)
		assert.NoError(t, err)
	})
	t.Run("Invalid", func(t *testing.T) {
		_, err := Run(&Script{Steps: []Step{{Op: "nope"}}})
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("Logging", func(t *testing.T) {
		logger, hook := testt.Logger(t)

		r := &Runner{Logger: logger}
		_, err := r.Run(&Script{Name: "logged", Values: []int{3, 1}, Steps: []Step{{Op: OpSort}}})
		require.NoError(t, err)

		entries := hook.AllEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, "applied step", entries[0].Message)
		assert.Equal(t, "sort", entries[0].Data["op"])
		assert.Equal(t, "logged", entries[0].Data["scenario"])
		assert.Equal(t, "scenario complete", entries[1].Message)
		assert.Equal(t, logrus.InfoLevel, entries[1].Level)

		hook.Reset()
		_, err = r.Run(&Script{Steps: []Step{{Op: OpPopBack}}})
		require.Error(t, err)
		last := hook.LastEntry()
		assert.Equal(t, logrus.ErrorLevel, last.Level)
		assert.True(t, errors.Is(last.Data[logrus.ErrorKey].(error), ers.ErrInvariantViolation))
		assert.Equal(t, ers.ErrInvariantViolation, last.Data["cause"])
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ExpectNone, KindOf(nil))
	assert.Equal(t, ExpectOutOfRange, KindOf(ers.Wrap(ers.ErrOutOfRange, "x")))
	assert.Equal(t, ExpectUnderflow, KindOf(ers.ErrUnderflow))
	assert.Equal(t, ExpectNotSorted, KindOf(ers.Wrapf(ers.ErrNotSorted, "y")))
	assert.Equal(t, ErrorKind("other"), KindOf(errors.New("z")))
	assert.Equal(t, ErrorKind("other"), KindOf(ers.Wrap(ers.ErrInvalidInput, "w")))
	assert.Equal(t, ExpectUnderflow, KindOf(fmt.Errorf("outer: %w", ers.Wrap(ers.ErrUnderflow, "pop"))))
}
