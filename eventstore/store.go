// Package eventstore is the append-only, de-duplicated local cache of
// transfer and claim event records, keyed by transaction identity.
package eventstore

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/leveldb"
)

// fixed storage key prefixes
const (
	transfersPrefix = "bridge:transfers:"
	claimsPrefix    = "bridge:claims:"
	lastWriteKey    = "bridge:lastwrite"

	dbCacheMB = 16
	dbHandles = 16
)

// Kind of a cached event
type Kind string

// event kinds
const (
	KindOutboundTransfer Kind = "outbound-transfer"
	KindInboundTransfer  Kind = "inbound-transfer"
	KindClaim            Kind = "claim"
)

// store errors
var (
	ErrEmptyTxHash = errors.New("event record has empty tx hash")
)

// Record is one locally observed chain event. Upserted by TxHash, never
// silently duplicated. All fields are omitempty so a partial write only
// carries the fields it actually sets.
type Record struct {
	TxHash        string `json:"txHash"`
	Kind          Kind   `json:"kind,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Reward        string `json:"reward,omitempty"`
	Sender        string `json:"sender,omitempty"`
	Recipient     string `json:"recipient,omitempty"`
	BridgeAddress string `json:"bridgeAddress,omitempty"`
	BlockNumber   uint64 `json:"blockNumber,omitempty"`
	Timestamp     int64  `json:"timestamp,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Snapshot is a unified read of both collections, newest first, plus the
// last write timestamp.
type Snapshot struct {
	Transfers []*Record
	Claims    []*Record
	LastWrite int64
}

// Store persists the two event collections in a key-value database.
type Store struct {
	mu sync.Mutex
	db *leveldb.Database
}

// Open the event store at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.New(path, dbCacheMB, dbHandles)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertTransfer upsert a record into the transfers collection.
func (s *Store) UpsertTransfer(record *Record) error {
	return s.upsert(transfersPrefix, record)
}

// UpsertClaim upsert a record into the claims collection.
func (s *Store) UpsertClaim(record *Record) error {
	return s.upsert(claimsPrefix, record)
}

// upsert merges the record into the collection under its tx hash. An
// existing record keeps fields the new write does not set; fields set by
// both take the new value. Nothing is ever deleted by an insertion.
func (s *Store) upsert(prefix string, record *Record) error {
	if record.TxHash == "" {
		return ErrEmptyTxHash
	}
	key := []byte(prefix + strings.ToLower(record.TxHash))

	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := s.mergeExisting(key, record)
	if err != nil {
		return err
	}
	bs, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	if err = s.db.Put(key, bs); err != nil {
		return err
	}
	return s.db.Put([]byte(lastWriteKey), []byte(strconv.FormatInt(common.NowMilli(), 10)))
}

func (s *Store) mergeExisting(key []byte, record *Record) (map[string]interface{}, error) {
	newFields := recordFields(record)
	old, err := s.db.Get(key)
	if leveldb.IsNotFoundErr(err) {
		return newFields, nil
	}
	if err != nil {
		return nil, err
	}
	var merged map[string]interface{}
	if err = json.Unmarshal(old, &merged); err != nil {
		return nil, err
	}
	for k, v := range newFields {
		merged[k] = v
	}
	return merged, nil
}

// recordFields marshals through JSON so unset (omitempty) fields drop out.
func recordFields(record *Record) map[string]interface{} {
	bs, _ := json.Marshal(record)
	fields := make(map[string]interface{})
	_ = json.Unmarshal(bs, &fields)
	return fields
}

// GetSnapshot read both collections, newest first.
func (s *Store) GetSnapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transfers, err := s.readCollection(transfersPrefix)
	if err != nil {
		return nil, err
	}
	claims, err := s.readCollection(claimsPrefix)
	if err != nil {
		return nil, err
	}

	var lastWrite int64
	if bs, err := s.db.Get([]byte(lastWriteKey)); err == nil {
		lastWrite, _ = strconv.ParseInt(string(bs), 10, 64)
	} else if !leveldb.IsNotFoundErr(err) {
		return nil, err
	}

	return &Snapshot{
		Transfers: transfers,
		Claims:    claims,
		LastWrite: lastWrite,
	}, nil
}

func (s *Store) readCollection(prefix string) ([]*Record, error) {
	iter := s.db.NewIterator([]byte(prefix))
	defer iter.Release()

	var records []*Record
	for iter.Next() {
		record := &Record{}
		if err := json.Unmarshal(iter.Value(), record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	sortNewestFirst(records)
	return records, nil
}

func sortNewestFirst(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].BlockNumber != records[j].BlockNumber {
			return records[i].BlockNumber > records[j].BlockNumber
		}
		return records[i].Timestamp > records[j].Timestamp
	})
}
