package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/rs/xid"
)

// Memory is the test double: it records stores and deletes and hands out
// URLs under a fake remote base, so tests can assert which assets were
// touched without any network.
type Memory struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string]bool
	deleted []string
}

func NewMemory(baseURL string) *Memory {
	return &Memory{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		objects: make(map[string]bool),
	}
}

func (s *Memory) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := fmt.Sprintf("%s/%s-%s", s.BaseURL, xid.New().String(), file.Filename)
	s.objects[ref] = true
	return ref, nil
}

func (s *Memory) Delete(ctx context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted = append(s.deleted, ref)
	if !s.objects[ref] {
		return fmt.Errorf("object %q not stored", ref)
	}
	delete(s.objects, ref)
	return nil
}

func (s *Memory) Owns(ref string) bool {
	return strings.HasPrefix(ref, s.BaseURL+"/")
}

// Deleted returns every ref a caller attempted to delete, in order.
func (s *Memory) Deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.deleted))
	copy(out, s.deleted)
	return out
}

// Seed marks a ref as already stored, as if uploaded in a previous request.
func (s *Memory) Seed(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[ref] = true
}
