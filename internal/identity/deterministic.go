package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// GalleryUUID derives a stable id for a gallery slug, used by seeds and
// fixtures that need reproducible identifiers.
func GalleryUUID(slug string) uuid.UUID {
	return UUID("jewelcms:gallery:" + strings.ToLower(strings.TrimSpace(slug)))
}

// FileKey derives a stable identity for a local file from its name and
// content. The upload orchestrator uses it to recognize a file it already
// uploaded on a previous submit attempt; two files that share a name but
// differ in bytes get distinct keys.
func FileKey(name string, data []byte) string {
	digest := sha256.Sum256(data)
	return UUID(fmt.Sprintf("jewelcms:upload:%s:%s", strings.TrimSpace(name), hex.EncodeToString(digest[:]))).String()
}
