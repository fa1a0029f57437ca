package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/codec"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/session"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
)

// accountLocks serializes Setup and ChangePassword per account within the
// process. Keyed by owner id.
var accountLocks sync.Map

func lockAccount(ownerID int64) func() {
	v, _ := accountLocks.LoadOrStore(ownerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

type vault struct {
	adapter  adapter.ServerAdapter
	cache    store.WrappedKeyCache
	keyStore *session.KeyStore

	keys   crypto.KeyGenerator
	wrap   crypto.PasswordKeyWrap
	hasher crypto.AuthHasher
	codec  *codec.BatchFieldCodec
	ids    *utils.UUIDGenerator

	mu      sync.RWMutex
	ownerID int64
	login   string

	logger *logger.Logger
}

// VaultComponents are the crypto building blocks of a [Vault]. A nil member
// is replaced by the production implementation.
type VaultComponents struct {
	Keys   crypto.KeyGenerator
	Wrap   crypto.PasswordKeyWrap
	Hasher crypto.AuthHasher
	Cipher crypto.FieldCipher
}

// NewVault builds the client vault. The key store decides where the
// unlocked data key lives; the cache keeps the last wrapped key seen from
// the server.
func NewVault(serverAdapter adapter.ServerAdapter, cache store.WrappedKeyCache, keyStore *session.KeyStore,
	cfg config.ClientVault, components VaultComponents, logger *logger.Logger) (Vault, error) {
	if components.Keys == nil {
		components.Keys = crypto.NewKeyGenerator(nil)
	}
	if components.Wrap == nil {
		wrap, err := crypto.NewPasswordKeyWrap(models.KDFVersion(cfg.KDFVersion), nil)
		if err != nil {
			return nil, fmt.Errorf("error creating password key wrap: %w", err)
		}
		components.Wrap = wrap
	}
	if components.Hasher == nil {
		components.Hasher = crypto.NewAuthHasher()
	}
	if components.Cipher == nil {
		components.Cipher = crypto.NewFieldCipher(nil)
	}

	return &vault{
		adapter:  serverAdapter,
		cache:    cache,
		keyStore: keyStore,
		keys:     components.Keys,
		wrap:     components.Wrap,
		hasher:   components.Hasher,
		codec:    codec.NewBatchFieldCodec(components.Cipher, cfg.Concurrency),
		ids:      utils.NewUUIDGenerator(),
		login:    cfg.Login,
		logger:   logger,
	}, nil
}

func (v *vault) Register(ctx context.Context, login, password string) error {
	return v.authenticate(ctx, login, password, v.adapter.Register)
}

func (v *vault) Login(ctx context.Context, login, password string) error {
	return v.authenticate(ctx, login, password, v.adapter.Login)
}

func (v *vault) authenticate(ctx context.Context, login, password string,
	call func(context.Context, models.User) (models.Token, error)) error {
	authHash, err := v.hasher.AuthHash(ctx, login, password)
	if err != nil {
		return fmt.Errorf("error deriving auth hash: %w", err)
	}

	token, err := call(ctx, models.User{Login: login, AuthHash: authHash})
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.ownerID = token.OwnerID
	v.login = login
	v.mu.Unlock()

	v.logger.Info().
		Str("func", "*vault.authenticate").
		Int64("owner_id", token.OwnerID).
		Msg("logged in")

	return nil
}

func (v *vault) session() (int64, string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.ownerID == 0 {
		return 0, "", ErrNotLoggedIn
	}
	return v.ownerID, v.login, nil
}

func (v *vault) Status(ctx context.Context) (VaultState, error) {
	if v.keyStore.HasKey() {
		return Unlocked, nil
	}

	_, err := v.fetchWrappedKey(ctx)
	switch {
	case errors.Is(err, ErrSetupRequired):
		return NeedsSetup, nil
	case err != nil:
		return 0, err
	default:
		return NeedsUnlock, nil
	}
}

// fetchWrappedKey prefers the server and refreshes the cache with what it
// returns. Transport failures fall back to the cached copy.
func (v *vault) fetchWrappedKey(ctx context.Context) (models.StoredWrappedKey, error) {
	ownerID, _, err := v.session()
	if err != nil {
		return models.StoredWrappedKey{}, err
	}

	stored, err := v.adapter.GetWrappedKey(ctx)
	switch {
	case err == nil:
		stored.OwnerID = ownerID
		if cacheErr := v.cache.PutWrappedKey(ctx, stored); cacheErr != nil {
			v.logger.Warn().Err(cacheErr).
				Str("func", "*vault.fetchWrappedKey").
				Msg("failed to refresh wrapped key cache")
		}
		return stored, nil
	case errors.Is(err, adapter.ErrNotFound):
		return models.StoredWrappedKey{}, ErrSetupRequired
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return models.StoredWrappedKey{}, err
	}

	v.logger.Warn().Err(err).
		Str("func", "*vault.fetchWrappedKey").
		Msg("server unavailable, using cached wrapped key")

	cached, cacheErr := v.cache.GetWrappedKey(ctx, ownerID)
	if errors.Is(cacheErr, store.ErrWrappedKeyNotFound) {
		return models.StoredWrappedKey{}, err
	}
	if cacheErr != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("error reading cached wrapped key: %w", cacheErr)
	}

	return cached, nil
}

func (v *vault) Setup(ctx context.Context, password string) error {
	ownerID, _, err := v.session()
	if err != nil {
		return err
	}

	unlock := lockAccount(ownerID)
	defer unlock()

	_, err = v.adapter.GetWrappedKey(ctx)
	switch {
	case err == nil:
		return ErrAlreadySetUp
	case !errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("error checking wrapped key: %w", err)
	}

	key, err := v.keys.Generate()
	if err != nil {
		return fmt.Errorf("error generating data key: %w", err)
	}
	defer key.Zero()

	wk, err := v.wrap.Seal(ctx, key, password)
	if err != nil {
		return fmt.Errorf("error sealing data key: %w", err)
	}

	version, err := v.adapter.PutWrappedKey(ctx, wk, 0)
	if errors.Is(err, adapter.ErrConflict) {
		return ErrAlreadySetUp
	}
	if err != nil {
		return fmt.Errorf("error uploading wrapped key: %w", err)
	}

	v.cacheWrappedKey(ctx, models.StoredWrappedKey{OwnerID: ownerID, WrappedKey: wk, Version: version})

	if _, err = v.keyStore.Store(key); err != nil {
		return fmt.Errorf("error storing data key: %w", err)
	}

	v.logger.Info().
		Str("func", "*vault.Setup").
		Int64("owner_id", ownerID).
		Int64("version", version).
		Msg("vault set up")

	return nil
}

func (v *vault) Unlock(ctx context.Context, password string) error {
	if v.keyStore.HasKey() {
		return nil
	}

	stored, err := v.fetchWrappedKey(ctx)
	if err != nil {
		return err
	}

	key, err := v.wrap.Unseal(ctx, stored.WrappedKey, password)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		v.logger.Debug().Err(err).Str("func", "*vault.Unlock").Msg("unseal failed")
		return ErrUnlockFailed
	}
	defer key.Zero()

	if _, err = v.keyStore.Store(key); err != nil {
		return fmt.Errorf("error storing data key: %w", err)
	}

	return nil
}

func (v *vault) Lock() {
	v.keyStore.Clear()
}

func (v *vault) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	ownerID, login, err := v.session()
	if err != nil {
		return err
	}

	unlock := lockAccount(ownerID)
	defer unlock()

	// Rewrapping needs the current server version; a cached copy could be stale.
	stored, err := v.adapter.GetWrappedKey(ctx)
	if errors.Is(err, adapter.ErrNotFound) {
		return ErrSetupRequired
	}
	if err != nil {
		return fmt.Errorf("error fetching wrapped key: %w", err)
	}

	rewrapped, err := v.wrap.Rewrap(ctx, stored.WrappedKey, oldPassword, newPassword)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return ErrUnlockFailed
	}

	authHash, err := v.hasher.AuthHash(ctx, login, newPassword)
	if err != nil {
		return fmt.Errorf("error deriving auth hash: %w", err)
	}

	version, err := v.adapter.RotateWrappedKey(ctx, rewrapped, stored.Version, authHash)
	if errors.Is(err, adapter.ErrConflict) {
		return ErrKeyChangedConcurrently
	}
	if err != nil {
		return fmt.Errorf("error rotating wrapped key: %w", err)
	}

	v.cacheWrappedKey(ctx, models.StoredWrappedKey{OwnerID: ownerID, WrappedKey: rewrapped, Version: version})

	v.logger.Info().
		Str("func", "*vault.ChangePassword").
		Int64("owner_id", ownerID).
		Int64("version", version).
		Msg("password changed")

	return nil
}

func (v *vault) cacheWrappedKey(ctx context.Context, stored models.StoredWrappedKey) {
	if err := v.cache.PutWrappedKey(ctx, stored); err != nil {
		v.logger.Warn().Err(err).
			Str("func", "*vault.cacheWrappedKey").
			Msg("failed to cache wrapped key")
	}
}

func (v *vault) SaveRecord(ctx context.Context, id string, record codec.Record, fields []string) (models.EncryptedRecord, error) {
	if _, _, err := v.session(); err != nil {
		return models.EncryptedRecord{}, err
	}
	if id == "" {
		id = v.ids.Generate()
	}

	var encrypted codec.Record
	err := v.keyStore.Use(func(key crypto.DataKey) error {
		var err error
		encrypted, err = v.codec.EncryptFields(ctx, record, fields, key)
		return err
	})
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	out := models.EncryptedRecord{ID: id, Fields: make(map[string]json.RawMessage, len(fields))}
	for _, name := range fields {
		env, ok := encrypted[name].(models.Envelope)
		if !ok {
			out.Fields[name] = json.RawMessage("null")
			continue
		}
		text, err := models.MarshalEnvelope(env)
		if err != nil {
			return models.EncryptedRecord{}, err
		}
		out.Fields[name] = json.RawMessage(text)
	}

	return v.adapter.PutRecord(ctx, out)
}

func (v *vault) LoadRecord(ctx context.Context, id string, fields []string) (codec.Record, []codec.FieldFailure, error) {
	if _, _, err := v.session(); err != nil {
		return nil, nil, err
	}
	if !v.keyStore.HasKey() {
		return nil, nil, session.ErrLocked
	}

	stored, err := v.adapter.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	record := make(codec.Record, len(stored.Fields))
	for name, raw := range stored.Fields {
		if len(raw) == 0 || string(raw) == "null" {
			record[name] = nil
			continue
		}
		record[name] = raw
	}

	if len(fields) == 0 {
		fields = make([]string, 0, len(record))
		for name := range record {
			fields = append(fields, name)
		}
		slices.Sort(fields)
	}

	var (
		decrypted codec.Record
		failures  []codec.FieldFailure
	)
	err = v.keyStore.Use(func(key crypto.DataKey) error {
		decrypted, failures = v.codec.DecryptFields(ctx, record, fields, key)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return decrypted, failures, nil
}

func (v *vault) ListRecords(ctx context.Context) ([]string, error) {
	if _, _, err := v.session(); err != nil {
		return nil, err
	}

	ids, err := v.adapter.ListRecordIDs(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)

	return ids, nil
}

func (v *vault) DeleteRecord(ctx context.Context, id string) error {
	if _, _, err := v.session(); err != nil {
		return err
	}

	return v.adapter.DeleteRecord(ctx, id)
}
