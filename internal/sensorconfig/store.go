package sensorconfig

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"

	"github.com/muurk/enoceanmqtt/internal/logging"
)

// cacheState is either cacheUnbuilt or cacheBuilt.
type cacheState interface {
	isCacheState()
}

type cacheUnbuilt struct{}

type cacheBuilt struct {
	records []SensorRecord
}

func (cacheUnbuilt) isCacheState() {}
func (cacheBuilt) isCacheState()   {}

// Store is the configuration store backed by one INI file.
type Store struct {
	mu sync.Mutex

	path    string
	doc     *ini.File
	cache   cacheState
	lastMod time.Time
	loadErr error
	log     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load errors and warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// Open loads the file at path. It never fails: when the file is missing or
// cannot be parsed the error is logged, the store starts with an empty
// document and LoadError reports what went wrong.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		cache: cacheUnbuilt{},
		log:   logging.GetLogger().Named("sensorconfig"),
	}
	for _, opt := range opts {
		opt(s)
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		s.fail("load", err)
		s.doc = newDocument()
		return s
	case info.IsDir():
		s.fail("load", fmt.Errorf("%s is not a file", path))
		s.doc = newDocument()
		return s
	}

	s.lastMod = info.ModTime()
	s.doc, err = parseDocument(path)
	if err != nil {
		s.fail("load", err)
		s.doc = newDocument()
	}

	return s
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// LoadError returns the *ConfigLoadError from the most recent load or
// reload, or nil when the document was read successfully.
func (s *Store) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// GetConfigSection returns a copy of the CONFIG section's key/value pairs.
func (s *Store) GetConfigSection() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()

	section, err := s.doc.GetSection(ReservedSection)
	if err != nil {
		return nil, &MissingSectionError{Section: ReservedSection}
	}
	return section.KeysHash(), nil
}

// Settings returns the typed CONFIG section. A *ValidationError is returned
// alongside the decoded settings when a numeric key does not parse.
func (s *Store) Settings() (GlobalSettings, error) {
	raw, err := s.GetConfigSection()
	if err != nil {
		return GlobalSettings{}, err
	}

	settings, problems := decodeSettings(raw)
	if len(problems) > 0 {
		return settings, &ValidationError{Problems: problems}
	}
	return settings, nil
}

// GetSensors returns the sensor records in file order. Repeated calls
// without a change to the file return equal slices.
func (s *Store) GetSensors() ([]SensorRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()

	if built, ok := s.cache.(cacheBuilt); ok {
		return cloneRecords(built.records), nil
	}

	prefix, err := s.namePrefix()
	if err != nil {
		return nil, err
	}

	records := make([]SensorRecord, 0, len(s.doc.Sections()))
	for _, section := range sensorSections(s.doc) {
		records = append(records, projectSection(section, prefix))
	}
	s.cache = cacheBuilt{records: records}

	return cloneRecords(records), nil
}

// HasSensor reports whether a sensor section exists for address.
func (s *Store) HasSensor(address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()
	return isSensorSection(address) && hasSection(s.doc, address)
}

// AddSensor adds a sensor section for address with the given EEP code
// (e.g. "D5-00-01") and writes the file. Adding CONFIG or an address that
// already exists logs a warning and changes nothing. When the write fails the
// section and cached record are rolled back.
func (s *Store) AddSensor(address, protocolCode string, publishRSSI bool) error {
	code, err := ParseProtocolCode(protocolCode)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addSensor(address, code, publishRSSI)
}

func (s *Store) addSensor(address string, code ProtocolCode, publishRSSI bool) error {
	s.reloadIfChanged()

	if !isSensorSection(address) {
		s.log.Warn("Tried to add reserved section as sensor", zap.String("address", address))
		return nil
	}
	if hasSection(s.doc, address) {
		s.log.Warn("Tried to add sensor which already exists", zap.String("address", address))
		return nil
	}

	addr, err := parseAddress(address)
	if err != nil {
		return err
	}
	prefix, err := s.namePrefix()
	if err != nil {
		return err
	}

	rssi := 0
	if publishRSSI {
		rssi = 1
	}

	section, err := s.doc.NewSection(address)
	if err != nil {
		return fmt.Errorf("failed to create section %q: %w", address, err)
	}
	fields := []struct {
		key   string
		value int64
	}{
		{KeyAddress, addr},
		{KeyRORG, int64(code.RORG)},
		{KeyFunc, int64(code.Func)},
		{KeyType, int64(code.Type)},
		{KeyPublishRSSI, int64(rssi)},
	}
	for _, f := range fields {
		if _, err := section.NewKey(f.key, fmt.Sprintf("%d", f.value)); err != nil {
			s.doc.DeleteSection(address)
			return fmt.Errorf("failed to set %s on section %q: %w", f.key, address, err)
		}
	}

	previous := s.cache
	// An unbuilt cache picks the new section up on the next full build.
	if built, ok := previous.(cacheBuilt); ok {
		records := append(make([]SensorRecord, 0, len(built.records)+1), built.records...)
		s.cache = cacheBuilt{records: append(records, projectSection(section, prefix))}
	}

	if err := s.save(); err != nil {
		s.doc.DeleteSection(address)
		s.cache = previous
		return err
	}

	s.log.Info("Added sensor",
		zap.String("address", address),
		zap.String("eep", code.String()),
		zap.Bool("publish_rssi", publishRSSI),
	)
	return nil
}

// RemoveSensor deletes the sensor section for address, drops it from the
// cached records and writes the file. Removing CONFIG or an unknown address
// logs a warning and changes nothing. When the write fails the document is
// re-read from disk, so the sensor is still present.
func (s *Store) RemoveSensor(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()

	if !isSensorSection(address) {
		s.log.Warn("Tried to remove reserved section, this would remove the gateway settings",
			zap.String("address", address))
		return nil
	}
	if !hasSection(s.doc, address) {
		s.log.Warn("Tried to remove sensor which doesn't exist", zap.String("address", address))
		return nil
	}

	s.doc.DeleteSection(address)

	if built, ok := s.cache.(cacheBuilt); ok {
		kept := make([]SensorRecord, 0, len(built.records))
		for _, r := range built.records {
			if r.Section != address {
				kept = append(kept, r)
			}
		}
		s.cache = cacheBuilt{records: kept}
	}

	if err := s.save(); err != nil {
		// The file still has the section; take memory back to what is on disk.
		s.reload()
		return err
	}

	s.log.Info("Removed sensor", zap.String("address", address))
	return nil
}

// SaveToFile writes the document to disk and records the new modification
// time, so the store's own write is not mistaken for an external edit.
func (s *Store) SaveToFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// ReloadFile re-reads the file, discarding the in-memory document and the
// cached records. On failure the store is left with an empty document and
// the error is returned as well as kept for LoadError.
func (s *Store) ReloadFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info, err := os.Stat(s.path); err == nil {
		s.lastMod = info.ModTime()
	}
	s.reload()
	return s.loadErr
}

func (s *Store) save() error {
	if err := writeDocument(s.doc, s.path); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	s.lastMod = info.ModTime()

	s.log.Debug("Saved config", zap.String("path", s.path), zap.Time("mtime", s.lastMod))
	return nil
}

// reloadIfChanged re-reads the file when its modification time is newer
// than the last one observed. A file that cannot be stat'ed is left alone.
func (s *Store) reloadIfChanged() {
	info, err := os.Stat(s.path)
	if err != nil {
		s.log.Debug("Cannot stat config", zap.String("path", s.path), zap.Error(err))
		return
	}
	if !info.ModTime().After(s.lastMod) {
		return
	}

	s.log.Debug("Reloading changed config",
		zap.String("path", s.path),
		zap.Time("previous_mtime", s.lastMod),
		zap.Time("mtime", info.ModTime()),
	)
	s.lastMod = info.ModTime()
	s.reload()
}

// reload replaces the document and invalidates the cache. The previous
// document is discarded even when parsing fails.
func (s *Store) reload() {
	s.cache = cacheUnbuilt{}
	s.loadErr = nil

	doc, err := parseDocument(s.path)
	if err != nil {
		s.fail("reload", err)
		s.doc = newDocument()
		return
	}
	s.doc = doc
}

func (s *Store) fail(op string, err error) {
	s.loadErr = &ConfigLoadError{Path: s.path, Op: op, Err: err}
	s.log.Error("Failed to "+op+" config", zap.String("path", s.path), zap.Error(err))
}

// namePrefix returns CONFIG's mqtt_prefix, used to build record names.
func (s *Store) namePrefix() (string, error) {
	section, err := s.doc.GetSection(ReservedSection)
	if err != nil {
		return "", &MissingSectionError{Section: ReservedSection}
	}
	if !section.HasKey(KeyMQTTPrefix) {
		s.log.Warn("Config section has no name prefix", zap.String("key", KeyMQTTPrefix))
		return "", nil
	}
	return section.Key(KeyMQTTPrefix).String(), nil
}
