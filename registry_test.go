package taglog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/taglog"
)

func TestRegistryActivate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		activate []string
		want     []string
	}{
		"single tag": {
			activate: []string{"NET"},
			want:     []string{"NET"},
		},
		"preserves insertion order": {
			activate: []string{"NET", "DB", "UI"},
			want:     []string{"NET", "DB", "UI"},
		},
		"duplicate is ignored": {
			activate: []string{"NET", "NET", "DB"},
			want:     []string{"NET", "DB"},
		},
		"empty tag is ignored": {
			activate: []string{"", "NET"},
			want:     []string{"NET"},
		},
		"whitespace tag is ignored": {
			activate: []string{"  ", "\t", "NET"},
			want:     []string{"NET"},
		},
		"case sensitive": {
			activate: []string{"net", "NET"},
			want:     []string{"net", "NET"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := taglog.NewRegistry()
			for _, tag := range tc.activate {
				reg.Activate(tag)
			}

			assert.Equal(t, tc.want, reg.Tags())
		})
	}
}

func TestRegistryDeactivate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		active     []string
		deactivate []string
		want       []string
	}{
		"removes active tag": {
			active:     []string{"NET", "DB"},
			deactivate: []string{"NET"},
			want:       []string{"DB"},
		},
		"unknown tag is ignored": {
			active:     []string{"NET"},
			deactivate: []string{"DB"},
			want:       []string{"NET"},
		},
		"blank tag is ignored": {
			active:     []string{"NET"},
			deactivate: []string{"", "  "},
			want:       []string{"NET"},
		},
		"force tag cannot be removed": {
			active:     []string{taglog.Force, "NET"},
			deactivate: []string{taglog.Force},
			want:       []string{taglog.Force, "NET"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := taglog.NewRegistry()
			for _, tag := range tc.active {
				reg.Activate(tag)
			}

			for _, tag := range tc.deactivate {
				reg.Deactivate(tag)
			}

			assert.Equal(t, tc.want, reg.Tags())
		})
	}
}

func TestRegistryIsActive(t *testing.T) {
	t.Parallel()

	reg := taglog.NewRegistry()
	reg.Activate("NET")

	tcs := map[string]struct {
		tag  string
		want bool
	}{
		"active tag":     {tag: "NET", want: true},
		"inactive tag":   {tag: "DB", want: false},
		"empty tag":      {tag: "", want: false},
		"whitespace tag": {tag: "   ", want: false},
		"case mismatch":  {tag: "net", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, reg.IsActive(tc.tag))
		})
	}
}

func TestRegistryHasAny(t *testing.T) {
	t.Parallel()

	reg := taglog.NewRegistry()
	reg.Activate("NET")
	reg.Activate("DB")

	tcs := map[string]struct {
		tags []string
		want bool
	}{
		"one active": {
			tags: []string{"UI", "NET"},
			want: true,
		},
		"all active": {
			tags: []string{"NET", "DB"},
			want: true,
		},
		"none active": {
			tags: []string{"UI", "AUDIO"},
			want: false,
		},
		"empty list": {
			tags: nil,
			want: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, reg.HasAny(tc.tags))
		})
	}
}

func TestRegistryReset(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		defaults []string
		want     []string
	}{
		"force inserted at front": {
			defaults: []string{"NET", "DB"},
			want:     []string{taglog.Force, "NET", "DB"},
		},
		"force kept in place when listed": {
			defaults: []string{"NET", taglog.Force, "DB"},
			want:     []string{"NET", taglog.Force, "DB"},
		},
		"empty defaults yield force only": {
			defaults: nil,
			want:     []string{taglog.Force},
		},
		"blanks and duplicates dropped": {
			defaults: []string{"NET", "", "NET", "  ", "DB"},
			want:     []string{taglog.Force, "NET", "DB"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := taglog.NewRegistry()
			reg.Activate("STALE")

			reg.Reset(taglog.Settings{DefaultTags: tc.defaults})

			assert.Equal(t, tc.want, reg.Tags())
			assert.True(t, reg.IsActive(taglog.Force))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		reg := taglog.NewRegistry()
		s := taglog.Settings{DefaultTags: []string{"A", "B"}}

		reg.Reset(s)
		first := reg.Tags()

		reg.Reset(s)
		assert.Equal(t, first, reg.Tags())
	})
}

func TestRegistryTagsDefensiveCopy(t *testing.T) {
	t.Parallel()

	reg := taglog.NewRegistry()
	reg.Activate("NET")

	tags := reg.Tags()
	tags[0] = "MUTATED"

	assert.Equal(t, []string{"NET"}, reg.Tags())
}
