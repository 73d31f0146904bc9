package mcf

import (
	"errors"
	"testing"
)

func validInstance() *Instance {
	return &Instance{
		Graph:  NewDigraph([]Arc{{0, 1}, {1, 2}}, 3),
		Lower:  []int64{0, 1},
		Upper:  []int64{10, 5},
		Cost:   []float64{2, -1},
		Supply: []int64{4, 0, -4},
	}
}

func TestInstance_Validate(t *testing.T) {
	testCases := []struct {
		desc    string
		mutate  func(*Instance)
		wantArc int
	}{
		{
			desc:    "valid instance",
			mutate:  func(inst *Instance) {},
			wantArc: -2, // no error
		},
		{
			desc:    "missing cost entry",
			mutate:  func(inst *Instance) { inst.Cost = inst.Cost[:1] },
			wantArc: -1,
		},
		{
			desc:    "missing supply entry",
			mutate:  func(inst *Instance) { inst.Supply = inst.Supply[:2] },
			wantArc: -1,
		},
		{
			desc:    "negative lower bound",
			mutate:  func(inst *Instance) { inst.Lower[1] = -1 },
			wantArc: 1,
		},
		{
			desc:    "negative capacity",
			mutate:  func(inst *Instance) { inst.Upper[0] = -3 },
			wantArc: 0,
		},
		{
			desc:    "lower bound above capacity",
			mutate:  func(inst *Instance) { inst.Lower[1] = 6 },
			wantArc: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			inst := validInstance()
			tc.mutate(inst)

			err := inst.Validate()

			if tc.wantArc == -2 {
				if err != nil {
					t.Fatalf("Validate(): want no error, got %v", err)
				}
				return
			}
			var configErr *ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("Validate(): want *ConfigError, got %v", err)
			}
			if configErr.Arc != tc.wantArc {
				t.Errorf("Validate(): want arc %d, got %d (%v)", tc.wantArc, configErr.Arc, err)
			}
		})
	}
}

func TestInstance_TotalCost(t *testing.T) {
	inst := validInstance()
	want := 2.0*3 - 1.0*2

	got := inst.TotalCost([]int64{3, 2})

	if got != want {
		t.Errorf("TotalCost(): want %g, got %g", want, got)
	}
}
