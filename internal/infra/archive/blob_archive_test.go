package archive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArchiveKey(t *testing.T) {
	key := archiveKey("Chat de WhatsApp con Pedidos.txt")

	assert.True(t, strings.HasPrefix(key, time.Now().Format("2006-01-02")+"/"))
	assert.True(t, strings.HasSuffix(key, "Chat de WhatsApp con Pedidos.txt"))
}

func TestArchiveKey_StripsDirectories(t *testing.T) {
	key := archiveKey("../../etc/passwd")

	assert.NotContains(t, key, "..")
	assert.True(t, strings.HasSuffix(key, "passwd"))
}

func TestArchiveKey_EmptyName(t *testing.T) {
	assert.True(t, strings.HasSuffix(archiveKey("  "), "export.txt"))
}

func TestArchiveKey_Uniqueness(t *testing.T) {
	assert.NotEqual(t, archiveKey("a.txt"), archiveKey("a.txt"))
}
