package kv

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"better-food-logs/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object stores each key as one object in a bucket.
type Object struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObject creates a Store backed by client.
func NewObject(client storage.Client, bucket, prefix string) *Object {
	return &Object{client: client, bucket: bucket, prefix: prefix}
}

func (o *Object) objectName(key string) string {
	if o.prefix == "" {
		return key + ".json"
	}
	return o.prefix + "/" + key + ".json"
}

func (o *Object) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := o.client.GetObject(ctx, o.bucket, o.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv: get %s: %w", key, err)
	}
	defer obj.Close()

	// minio reports a missing key on first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return data, nil
}

func (o *Object) Set(ctx context.Context, key string, value []byte) error {
	_, err := o.client.PutObject(ctx, o.bucket, o.objectName(key), bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("kv: put %s: %w", key, err)
	}
	return nil
}

func (o *Object) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		err := o.client.RemoveObject(ctx, o.bucket, o.objectName(key), minio.RemoveObjectOptions{})
		if err != nil && !storage.IsNotFound(err) {
			return fmt.Errorf("kv: delete %s: %w", key, err)
		}
	}
	return nil
}
