/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package moc

/*****************************************************************************************************************/

import "testing"

/*****************************************************************************************************************/

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := OpenStore(":memory:")
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}

	original, err := NewFromRanges(6, [][2]int64{{0, 5}, {100, 110}})
	if err != nil {
		t.Fatalf("NewFromRanges() error = %v", err)
	}

	id, err := store.Save(original)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if id == "" {
		t.Fatalf("Save() returned an empty id")
	}

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.OrderMax != original.OrderMax {
		t.Errorf("loaded OrderMax = %d, want %d", loaded.OrderMax, original.OrderMax)
	}

	if loaded.Pixels.Npix() != original.Pixels.Npix() {
		t.Errorf("loaded Npix() = %d, want %d", loaded.Pixels.Npix(), original.Pixels.Npix())
	}

	for _, pix := range original.Pixels.ToSlice() {
		if !loaded.Pixels.Contains(pix) {
			t.Errorf("loaded MOC missing pixel %d", pix)
		}
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.Load(id); err == nil {
		t.Errorf("Load() after Delete() should fail")
	}
}

/*****************************************************************************************************************/

func TestDecodeIntervalsRejectsMalformed(t *testing.T) {
	if _, err := decodeIntervals("0:4,garbage"); err == nil {
		t.Errorf("decodeIntervals() should reject a malformed entry")
	}
}

/*****************************************************************************************************************/
