package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from DeliveryStatus
		to   DeliveryStatus
		want bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusInTransit, false},
		{StatusAccepted, StatusPickedUp, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusAccepted, StatusDelivered, false},
		{StatusPickedUp, StatusInTransit, true},
		{StatusPickedUp, StatusCancelled, true},
		{StatusPickedUp, StatusDelivered, false},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	active := map[DeliveryStatus]bool{
		StatusPending:   false,
		StatusAccepted:  true,
		StatusPickedUp:  true,
		StatusInTransit: true,
		StatusDelivered: false,
		StatusCancelled: false,
	}
	for status, want := range active {
		if got := status.IsActive(); got != want {
			t.Errorf("%s.IsActive(): expected %v, got %v", status, want, got)
		}
	}

	terminal := map[DeliveryStatus]bool{
		StatusPending:   false,
		StatusAccepted:  false,
		StatusDelivered: true,
		StatusCancelled: true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal(): expected %v, got %v", status, want, got)
		}
	}
}

func TestInvolves(t *testing.T) {
	d := &DeliveryRequest{ClientID: "client_1", DriverID: "driver_9"}

	if !d.Involves("client_1") {
		t.Error("requester must be involved")
	}
	if !d.Involves("driver_9") {
		t.Error("assigned driver must be involved")
	}
	if d.Involves("someone_else") {
		t.Error("unrelated user must not be involved")
	}

	// A pending request has no driver; an empty userID must never match it.
	pending := &DeliveryRequest{ClientID: "client_1"}
	if pending.Involves("") {
		t.Error("empty user id must not match the unset driver field")
	}
}
