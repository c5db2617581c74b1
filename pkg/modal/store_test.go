package modal

import "testing"

func TestStore_DispatchAppliesInOrder(t *testing.T) {
	s := NewStore()

	if err := s.Dispatch(ShowAction("m1", nil, true)); err != nil {
		t.Fatalf("Dispatch(show) error: %v", err)
	}
	if err := s.Dispatch(HideAction("m1")); err != nil {
		t.Fatalf("Dispatch(hide) error: %v", err)
	}

	entry, ok := s.Snapshot().Lookup("m1")
	if !ok || entry.Visible {
		t.Fatalf("entry = %#v (present=%v), want present and hidden", entry, ok)
	}
}

func TestStore_SnapshotIsReplacedNotMutated(t *testing.T) {
	s := NewStore()
	_ = s.Dispatch(ShowAction("m1", nil, true))
	before := s.Snapshot()

	_ = s.Dispatch(HideAction("m1"))

	if !before["m1"].Visible {
		t.Fatalf("earlier snapshot changed after dispatch")
	}
	if s.Snapshot()["m1"].Visible {
		t.Fatalf("current snapshot still visible")
	}
}

func TestStore_SubscribeReceivesLatest(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	_ = s.Dispatch(ShowAction("m1", nil, true))
	_ = s.Dispatch(ShowAction("m2", nil, true))

	got := <-ch
	if len(got) != 2 {
		t.Fatalf("subscriber got %d entries, want the latest snapshot with 2", len(got))
	}

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot %#v", extra)
	default:
	}
}

func TestStore_NoopDoesNotPublish(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	_ = s.Dispatch(HideAction("missing"))

	select {
	case got := <-ch:
		t.Fatalf("no-op published %#v", got)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("channel still open after cancel")
	}
	if err := s.Dispatch(ShowAction("m1", nil, true)); err != nil {
		t.Fatalf("Dispatch after cancel error: %v", err)
	}
}
