package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("jewelcms:gallery:rings")
	second := UUID("jewelcms:gallery:rings")
	if first != second {
		t.Fatalf("same key produced different ids: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected non-nil id")
	}
}

func TestUUIDDistinguishesKeys(t *testing.T) {
	if UUID("jewelcms:gallery:rings") == UUID("jewelcms:gallery:necklaces") {
		t.Fatal("different keys produced the same id")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if UUID("") != uuid.Nil {
		t.Fatal("empty key should map to uuid.Nil")
	}
	if UUID("   ") != uuid.Nil {
		t.Fatal("blank key should map to uuid.Nil")
	}
}

func TestGalleryUUIDNormalizesSlug(t *testing.T) {
	if GalleryUUID("Rings") != GalleryUUID("  rings ") {
		t.Fatal("slug casing and whitespace should not change the id")
	}
}

func TestFileKeyIsContentAddressed(t *testing.T) {
	same := FileKey("band.jpg", []byte("aa"))
	if same != FileKey("band.jpg", []byte("aa")) {
		t.Fatal("file key is not stable")
	}
	if same == FileKey("band.jpg", []byte("zz")) {
		t.Fatal("different bytes under the same name should change the key")
	}
	if same == FileKey("other.jpg", []byte("aa")) {
		t.Fatal("name change should change the key")
	}
}
