package movers

import "testing"

func TestHelpOptions_DefaultCatalog(t *testing.T) {
	opts, fallback := NewService(DefaultProviders).HelpOptions()
	if fallback {
		t.Errorf("stock catalog must not flag fallback")
	}
	if len(opts) != 2 {
		t.Fatalf("want 2 options, got %d", len(opts))
	}
	// Cheapest first: the head of the list is the category default.
	if opts[0].ID != "moving_help:quickmove-helpers" || opts[0].Cost.Amount != 220 {
		t.Errorf("default option = %+v", opts[0])
	}
	if opts[1].ID != "moving_help:college-movers-co" || opts[1].Cost.Amount != 310 {
		t.Errorf("second option = %+v", opts[1])
	}
}

func TestHelpOptions_EmptyCatalog(t *testing.T) {
	opts, fallback := NewService(nil).HelpOptions()
	if !fallback {
		t.Errorf("empty catalog must flag fallback")
	}
	if len(opts) != 1 || opts[0].Cost.Amount != 250 {
		t.Errorf("want single flat 250 option, got %+v", opts)
	}
}
