package monitor

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-optical/pkg/network"
)

type stubSource struct {
	samples map[int]Sample
	osnr    []ChannelOSNR
	err     error
}

func (s *stubSource) MonitorAt(node string, port *network.Port) (map[int]Sample, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.samples, nil
}

func (s *stubSource) MonitorOSNR(node string) ([]ChannelOSNR, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.osnr, nil
}

func TestSamplesAtOrdering(t *testing.T) {
	src := &stubSource{samples: map[int]Sample{
		7: {Channel: 7, Signal: 1e-3},
		1: {Channel: 1, Signal: 2e-3},
		4: {Channel: 4, Signal: 0},
	}}
	a := NewAdapter(src)

	samples, err := a.SamplesAt("tap", nil)
	if err != nil {
		t.Fatalf("SamplesAt: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	for i, want := range []int{1, 4, 7} {
		if samples[i].Channel != want {
			t.Errorf("samples[%d].Channel = %d, want %d", i, samples[i].Channel, want)
		}
	}
}

func TestSamplesAtError(t *testing.T) {
	wantErr := errors.New("model offline")
	a := NewAdapter(&stubSource{err: wantErr})

	if _, err := a.SamplesAt("tap", nil); !errors.Is(err, wantErr) {
		t.Errorf("SamplesAt error = %v, want wrapped %v", err, wantErr)
	}
}

func TestChannelAt(t *testing.T) {
	src := &stubSource{samples: map[int]Sample{
		5: {Channel: 5, Signal: 1e-6, ASE: 1e-9},
	}}
	a := NewAdapter(src)

	s, ok, err := a.ChannelAt("tap", nil, 5)
	if err != nil || !ok {
		t.Fatalf("ChannelAt(5) = %v, %v, %v", s, ok, err)
	}
	if s.Signal != 1e-6 {
		t.Errorf("Signal = %v", s.Signal)
	}

	if _, ok, err := a.ChannelAt("tap", nil, 6); err != nil || ok {
		t.Errorf("ChannelAt(6) ok = %v, err = %v; want absent without error", ok, err)
	}
}

func TestOSNRAtOrdering(t *testing.T) {
	src := &stubSource{osnr: []ChannelOSNR{
		{Channel: 9, DB: 20},
		{Channel: 2, DB: 35},
	}}
	a := NewAdapter(src)

	osnr, err := a.OSNRAt("bob")
	if err != nil {
		t.Fatalf("OSNRAt: %v", err)
	}
	if osnr[0].Channel != 2 || osnr[1].Channel != 9 {
		t.Errorf("OSNRAt not sorted by channel: %+v", osnr)
	}
}
