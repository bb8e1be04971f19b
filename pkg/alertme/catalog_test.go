package alertme

import "testing"

func TestCatalogFixedEntries(t *testing.T) {
	c := NewCatalog()

	msg, err := c.GetMessage("routing_table_request", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(msg.Data) != "\x12\x01" {
		t.Errorf("routing_table_request data = % x", msg.Data)
	}

	msg, err = c.GetMessage("permit_join_request", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(msg.Data) != "\xFF\x00" {
		t.Errorf("permit_join_request data = % x", msg.Data)
	}
}

func TestCatalogUnknownMessage(t *testing.T) {
	c := NewCatalog()
	if _, err := c.GetMessage("does_not_exist", nil); err == nil {
		t.Fatal("expected ErrUnknownMessage")
	}
}

func TestCatalogReturnsIndependentCopies(t *testing.T) {
	c := NewCatalog()

	first, err := c.GetMessage("routing_table_request", nil)
	if err != nil {
		t.Fatal(err)
	}
	first.Data[0] = 0xFF

	second, err := c.GetMessage("routing_table_request", nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.Data[0] == 0xFF {
		t.Fatal("mutating one message leaked into a later lookup")
	}
}

func TestCatalogSwitchStateGenerator(t *testing.T) {
	c := NewCatalog()

	msg, err := c.GetMessage("switch_state_request", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(msg.Data) != "\x11\x00\x01\x01" {
		t.Errorf("query data = % x", msg.Data)
	}

	msg, err = c.GetMessage("switch_state_request", map[string]any{"on": true})
	if err != nil {
		t.Fatal(err)
	}
	if string(msg.Data) != "\x11\x00\x02\x01\x01" {
		t.Errorf("set-on data = % x", msg.Data)
	}
}

func TestCatalogModeChangePropagatesEncodeError(t *testing.T) {
	c := NewCatalog()
	if _, err := c.GetMessage("mode_change_request", map[string]any{"mode": Mode("Bogus")}); err == nil {
		t.Fatal("expected error to propagate from encoder")
	}
}
