package inmem_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog/inmem"
	"github.com/fedcloud/catalog/kv"
)

var bucketName = []byte("telemetryv1")

func TestKVStorePutGetDelete(t *testing.T) {
	s := inmem.NewKVStore()
	ctx := context.Background()

	err := s.Update(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte("hello"), []byte("world"))
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		v, err := b.Get([]byte("hello"))
		if err != nil {
			return err
		}
		require.Equal(t, []byte("world"), v)
		return nil
	})
	require.NoError(t, err)

	err = s.Update(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		return b.Delete([]byte("hello"))
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		_, err = b.Get([]byte("hello"))
		return err
	})
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
	require.True(t, kv.IsNotFound(err))
}

func TestKVStoreFreshBucketReadsEmpty(t *testing.T) {
	s := inmem.NewKVStore()
	ctx := context.Background()

	// A bucket no Update has ever touched must be readable and empty, not
	// an error.
	err := s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}

		_, err = b.Get([]byte("missing"))
		require.ErrorIs(t, err, kv.ErrKeyNotFound)

		cursor, err := b.Cursor()
		if err != nil {
			return err
		}
		k, v := cursor.First()
		require.Nil(t, k)
		require.Nil(t, v)

		require.ErrorIs(t, b.Put([]byte("k"), []byte("v")), kv.ErrTxNotWritable)
		return nil
	})
	require.NoError(t, err)
}

func TestKVStoreViewIsReadOnly(t *testing.T) {
	s := inmem.NewKVStore()
	ctx := context.Background()

	err := s.Update(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte("k"), []byte("v"))
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte("k2"), []byte("v2"))
	})
	require.ErrorIs(t, err, kv.ErrTxNotWritable)

	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		return b.Delete([]byte("k"))
	})
	require.ErrorIs(t, err, kv.ErrTxNotWritable)
}

func TestKVStoreCursorSeekPrefix(t *testing.T) {
	s := inmem.NewKVStore()
	ctx := context.Background()

	pairs := map[string]string{
		"user_a/vo_1": "vo_1",
		"user_a/vo_2": "vo_2",
		"user_b/vo_1": "vo_1",
	}

	err := s.Update(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		for k, v := range pairs {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	var keys []string
	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		cursor, err := b.Cursor()
		if err != nil {
			return err
		}
		prefix := []byte("user_a/")
		for k, _ := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cursor.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"user_a/vo_1", "user_a/vo_2"}, keys)
}

func TestKVStoreCursorOrdering(t *testing.T) {
	s := inmem.NewKVStore()
	ctx := context.Background()

	err := s.Update(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		for _, k := range []string{"c", "a", "b"} {
			if err := b.Put([]byte(k), []byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx kv.Tx) error {
		b, err := tx.Bucket(bucketName)
		if err != nil {
			return err
		}
		cursor, err := b.Cursor()
		if err != nil {
			return err
		}

		k, _ := cursor.First()
		require.Equal(t, []byte("a"), k)
		k, _ = cursor.Next()
		require.Equal(t, []byte("b"), k)
		k, _ = cursor.Last()
		require.Equal(t, []byte("c"), k)
		k, _ = cursor.Prev()
		require.Equal(t, []byte("b"), k)
		return nil
	})
	require.NoError(t, err)
}
