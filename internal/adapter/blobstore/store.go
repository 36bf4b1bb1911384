// Package blobstore keeps uploaded payment proofs on local disk or in Google
// Cloud Storage.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const (
	// maxNameLen bounds the doctor part of a proof file name.
	maxNameLen = 30
	// maxKeyAttempts bounds the suffixes tried for a taken key.
	maxKeyAttempts = 5
)

// Backend writes one object. Put fails with an error matching fs.ErrExist
// when key is already taken.
type Backend interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Close() error
}

// ProofStore lays proofs out by company, region, group and month.
type ProofStore struct {
	log     *slog.Logger
	backend Backend
}

// NewProofStore wraps a backend.
func NewProofStore(logger *slog.Logger, backend Backend) *ProofStore {
	return &ProofStore{log: logger.With("adapter", "blobstore"), backend: backend}
}

// Open builds the backend selected by cfg.
func Open(ctx context.Context, logger *slog.Logger, cfg config.StorageConfig) (*ProofStore, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.Backend {
	case config.StorageGCS:
		backend, err = NewGCS(ctx, cfg.GCSBucket, cfg.CredentialsFile)
	default:
		backend, err = NewLocal(cfg.LocalDir)
	}
	if err != nil {
		return nil, fmt.Errorf("blobstore: open %s backend: %w", cfg.Backend, err)
	}
	return NewProofStore(logger, backend), nil
}

// SaveProof stores data under the proof key of plan and returns the key.
// Existing objects are never replaced: a taken key gets a numeric suffix.
func (s *ProofStore) SaveProof(ctx context.Context, plan *domain.PlanRecord, filename, contentType string, data []byte, at time.Time) (string, error) {
	base := ProofKey(plan, filename, contentType, at)
	key := base
	for attempt := 1; ; attempt++ {
		err := s.backend.Put(ctx, key, contentType, bytes.NewReader(data))
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) || attempt >= maxKeyAttempts {
			return "", fmt.Errorf("blobstore: put %s: %w", key, err)
		}
		key = suffixed(base, attempt+1)
	}

	s.log.DebugContext(ctx, "proof stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return key, nil
}

// Close releases the backend.
func (s *ProofStore) Close() error { return s.backend.Close() }

// ProofKey is company/region/group/YYYY_MM/<doctor>_<plan id>_<unix>.<ext>.
// Every segment other than the plan id is reduced to ASCII letters, digits
// and underscores, so the plan id keeps keys of non-Latin names apart.
func ProofKey(plan *domain.PlanRecord, filename, contentType string, at time.Time) string {
	name := safeSegment(plan.DoctorName)
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}

	return path.Join(
		safeSegment(plan.Company),
		safeSegment(plan.Region),
		safeSegment(plan.Group),
		at.UTC().Format("2006_01"),
		fmt.Sprintf("%s_%s_%d.%s", name, plan.ID, at.Unix(), extension(filename, contentType)),
	)
}

// suffixed inserts _n before the extension of key.
func suffixed(key string, n int) string {
	ext := path.Ext(key)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(key, ext), n, ext)
}

func safeSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")); ext != "" && isAlnum(ext) {
		return ext
	}
	switch strings.ToLower(contentType) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	case "application/pdf":
		return "pdf"
	}
	return "jpg"
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
