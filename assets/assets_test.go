package assets

import "testing"

func TestLoadWarehouseEmbedded(t *testing.T) {
	w, err := LoadWarehouse()
	if err != nil {
		t.Fatalf("LoadWarehouse: %v", err)
	}
	if w.Name != "warehouse" {
		t.Errorf("Name = %q, want warehouse", w.Name)
	}
	if len(w.Zones) != 4 {
		t.Errorf("got %d zones, want 4", len(w.Zones))
	}
}
