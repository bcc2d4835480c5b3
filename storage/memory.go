package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
)

type memoryObject struct {
	contentType string
	data        []byte
}

// MemoryUploader держит файлы в памяти процесса. Используется, когда R2 не настроен,
// и в тестах.
type MemoryUploader struct {
	mu            sync.RWMutex
	objects       map[string]memoryObject
	publicBaseURL string
}

func NewMemoryUploader(publicBaseURL string) *MemoryUploader {
	return &MemoryUploader{objects: make(map[string]memoryObject), publicBaseURL: publicBaseURL}
}

func (u *MemoryUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body (key: %s): %w", key, err)
	}
	sum := md5.Sum(data)

	u.mu.Lock()
	u.objects[key] = memoryObject{contentType: contentType, data: data}
	u.mu.Unlock()

	return &UploadResult{Key: key, Location: u.GetPublicURL(key), ETag: hex.EncodeToString(sum[:])}, nil
}

func (u *MemoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	return nil
}

func (u *MemoryUploader) GetPublicURL(key string) string {
	return joinPublicURL(u.publicBaseURL, key)
}

// Object возвращает сохранённый файл; ok=false если ключа нет.
func (u *MemoryUploader) Object(key string) (data []byte, contentType string, ok bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	obj, ok := u.objects[key]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), obj.data...), obj.contentType, true
}

func (u *MemoryUploader) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.objects)
}
