package protection

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	cryptoDomain "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/crypto"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	formatVersion byte = 1
	headerSize         = 1 + 8
)

// Protector seals data with AES-256-GCM using per-purpose subkeys of the
// newest master key.
type Protector struct {
	repo   protection.Repository
	aes    cryptoDomain.AESProcessor
	logger logger.Logger

	mu      sync.RWMutex
	keys    map[int64][]byte
	current int64
	loaded  bool
}

var _ protection.Protector = (*Protector)(nil)

// NewProtector creates a protector. The key ring is loaded on first use.
func NewProtector(repo protection.Repository, aes cryptoDomain.AESProcessor, logger logger.Logger) (*Protector, error) {
	if repo == nil {
		return nil, fmt.Errorf("protection repository is required")
	}
	if aes == nil {
		return nil, fmt.Errorf("aes processor is required")
	}
	return &Protector{
		repo:   repo,
		aes:    aes,
		logger: logger,
		keys:   make(map[int64][]byte),
	}, nil
}

// Protect seals plaintext for purpose.
func (p *Protector) Protect(ctx context.Context, purpose string, plaintext []byte) ([]byte, error) {
	keyID, master, err := p.currentKey(ctx)
	if err != nil {
		return nil, err
	}

	subkey, err := p.aes.DeriveKey(master, purpose, cryptoDomain.AESKeySize256)
	if err != nil {
		return nil, err
	}

	sealed, err := p.aes.Encrypt(plaintext, subkey)
	if err != nil {
		return nil, fmt.Errorf("failed to protect data: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(sealed))
	out[0] = formatVersion
	binary.BigEndian.PutUint64(out[1:headerSize], uint64(keyID))
	return append(out, sealed...), nil
}

// Unprotect opens data sealed by Protect for the same purpose.
func (p *Protector) Unprotect(ctx context.Context, purpose string, protected []byte) ([]byte, error) {
	if len(protected) < headerSize || protected[0] != formatVersion {
		return nil, errors.New("invalid protected payload")
	}

	keyID := int64(binary.BigEndian.Uint64(protected[1:headerSize]))
	master, err := p.key(ctx, keyID)
	if err != nil {
		return nil, err
	}

	subkey, err := p.aes.DeriveKey(master, purpose, cryptoDomain.AESKeySize256)
	if err != nil {
		return nil, err
	}

	plain, err := p.aes.Decrypt(protected[headerSize:], subkey)
	if err != nil {
		return nil, fmt.Errorf("failed to unprotect data: %w", err)
	}
	return plain, nil
}

// ProtectString protects plaintext and encodes the result as URL-safe base64.
func (p *Protector) ProtectString(ctx context.Context, purpose, plaintext string) (string, error) {
	protected, err := p.Protect(ctx, purpose, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(protected), nil
}

// UnprotectString reverses ProtectString.
func (p *Protector) UnprotectString(ctx context.Context, purpose, protected string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(protected)
	if err != nil {
		return "", fmt.Errorf("invalid protected payload: %w", err)
	}
	plain, err := p.Unprotect(ctx, purpose, raw)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// RotateKey creates a new master key; it seals everything protected from now on.
func (p *Protector) RotateKey(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadLocked(ctx); err != nil {
		return err
	}
	return p.createKeyLocked(ctx)
}

func (p *Protector) currentKey(ctx context.Context) (int64, []byte, error) {
	p.mu.RLock()
	if p.loaded && p.current != 0 {
		id, key := p.current, p.keys[p.current]
		p.mu.RUnlock()
		return id, key, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadLocked(ctx); err != nil {
		return 0, nil, err
	}
	if p.current == 0 {
		if err := p.createKeyLocked(ctx); err != nil {
			return 0, nil, err
		}
	}
	return p.current, p.keys[p.current], nil
}

func (p *Protector) key(ctx context.Context, id int64) ([]byte, error) {
	p.mu.RLock()
	key, ok := p.keys[id]
	p.mu.RUnlock()
	if ok {
		return key, nil
	}

	// Another instance may have rotated the ring.
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	if err := p.loadLocked(ctx); err != nil {
		return nil, err
	}
	if key, ok = p.keys[id]; !ok {
		return nil, fmt.Errorf("key %d: %w", id, protection.ErrUnknownKey)
	}
	return key, nil
}

func (p *Protector) loadLocked(ctx context.Context) error {
	if p.loaded {
		return nil
	}

	elements, err := p.repo.GetAllElements(ctx)
	if err != nil {
		return err
	}
	for _, element := range elements {
		p.keys[element.ID] = element.Data
		if element.ID > p.current {
			p.current = element.ID
		}
	}
	p.loaded = true
	return nil
}

func (p *Protector) createKeyLocked(ctx context.Context) error {
	data, err := p.aes.GenerateKey(cryptoDomain.AESKeySize256)
	if err != nil {
		return err
	}

	element := &protection.ProtectionKey{
		FriendlyName: "key-" + uuid.NewString(),
		Data:         data,
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.repo.StoreElement(ctx, element); err != nil {
		return err
	}

	p.keys[element.ID] = element.Data
	p.current = element.ID
	p.logger.Info("Created protection key ", element.FriendlyName)
	return nil
}
