package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/kretatools/internal/keys"
)

var ErrNotFound = errors.New("credentials not found")

// currentKey points at the credentials the CLI should use by default.
var currentKey = []byte("credentials/current")

type Store struct {
	db            *badger.DB
	encryptionKey *keys.Key
}

func NewStore(
	db *badger.DB,
	encryptionKey *keys.Key,
) *Store {
	return &Store{
		db:            db,
		encryptionKey: encryptionKey,
	}
}

func (s *Store) Insert(ctx context.Context, credential *Credentials) error {
	encoded, err := credential.Encode(s.encryptionKey)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(encoded)
		if err != nil {
			return err
		}
		return txn.Set(recordKey(encoded.ID), data)
	})
}

func (s *Store) FindByID(ctx context.Context, id ID) (*Credentials, error) {
	var credential EncodedCredentials
	if err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &credential)
		})
	}); errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return credential.Decode(s.encryptionKey)
}

// SetCurrent marks id as the credentials to authenticate with on following runs.
func (s *Store) SetCurrent(ctx context.Context, id ID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(currentKey, []byte(id))
	})
}

func (s *Store) Current(ctx context.Context) (*Credentials, error) {
	var credential EncodedCredentials
	if err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(currentKey)
		if err != nil {
			return err
		}
		return item.Value(func(id []byte) error {
			item, err := txn.Get(recordKey(ID(id)))
			if err != nil {
				return err
			}
			return item.Value(func(value []byte) error {
				return json.Unmarshal(value, &credential)
			})
		})
	}); errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return credential.Decode(s.encryptionKey)
}

func recordKey(id ID) []byte {
	return []byte(fmt.Sprintf("credentials/%s", id))
}
