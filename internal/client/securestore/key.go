package securestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/dmitrijs2005/calamaunido/internal/cryptox"
	"github.com/dmitrijs2005/calamaunido/internal/filex"
)

// LoadOrCreateDeviceKey reads the device secret at path, creating it with
// fresh random bytes and 0600 permissions when it does not exist yet.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) != cryptox.KeySize {
			return nil, fmt.Errorf("device key %s: %d bytes: %w", path, len(b), cryptox.ErrKeySize)
		}
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	if err := filex.EnsureParent(path); err != nil {
		return nil, err
	}

	b = common.GenerateRandByteArray(cryptox.KeySize)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create device key: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write device key: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close device key: %w", err)
	}
	return b, nil
}
