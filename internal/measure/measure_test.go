package measure

import (
	"encoding/json"
	"testing"
)

func TestValue(t *testing.T) {
	c := Computed(2.5)
	if v, ok := c.Get(); !ok || v != 2.5 {
		t.Errorf("Computed(2.5).Get() = %v, %v", v, ok)
	}
	if c.Reason() != "" {
		t.Errorf("computed value has reason %q", c.Reason())
	}

	n := NotApplicablef("missing %s", "Breedte")
	if n.Defined() {
		t.Error("NotApplicable value reports defined")
	}
	if n.Or(7) != 7 {
		t.Errorf("Or fallback = %v, want 7", n.Or(7))
	}
	if n.Reason() != "missing Breedte" {
		t.Errorf("reason = %q", n.Reason())
	}
	if got := n.Format("%.2f"); got != "-" {
		t.Errorf("Format of undefined = %q, want -", got)
	}
}

func TestValueJSON(t *testing.T) {
	for _, in := range []Value{Computed(0), Computed(31.25), NotApplicable("no obstruction")} {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		var out Value
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Errorf("round trip of %v gave %v (json %s)", in, out, data)
		}
	}
}
