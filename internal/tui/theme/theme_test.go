package theme

import (
	"testing"

	"github.com/theirongolddev/paycheck/internal/model"
)

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
	if len(Names()) != len(All) {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestSeverityColor(t *testing.T) {
	th := FlexokiDark
	if th.SeverityColor(model.SeverityLarge) != th.LargeDay {
		t.Fatal("large days should use LargeDay")
	}
	if th.SeverityColor(model.SeveritySmall) != th.SmallDay {
		t.Fatal("small days should use SmallDay")
	}
	if th.SeverityColor(model.SeverityNone) != th.Border {
		t.Fatal("empty days should use Border")
	}
}

func TestBalanceColor(t *testing.T) {
	th := TokyoNight
	if th.BalanceColor(true) != th.Red {
		t.Fatalf("deficit color = %v, want %v", th.BalanceColor(true), th.Red)
	}
	if th.BalanceColor(false) == th.BalanceColor(true) {
		t.Fatal("surplus and deficit should differ")
	}
	if th.DepositColor() != th.GreenBright {
		t.Fatalf("deposit color = %v, want %v", th.DepositColor(), th.GreenBright)
	}
}
