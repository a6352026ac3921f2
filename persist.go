package fortuna

// PersistStore abstracts the host key-value store used to checkpoint a
// zero-entropy stirring blob across restarts. The specific trigger for Save
// (page unload, signal handler, explicit call) is outside this package's
// scope; the host decides when to call it.
type PersistStore interface {
	// Load returns the previously saved blob, or ok=false if none exists.
	Load() (blob []byte, ok bool, err error)

	// Save persists blob for a future Load.
	Save(blob []byte) error
}

// LoadPersisted reads the configured PersistStore's blob, if any, and folds
// it into the pools via AddEntropy with estimatedBits=0 and sourceTag
// "loadpool": a compromised store must not be credited with any entropy.
func (g *Generator) LoadPersisted() error {
	g.mu.Lock()
	store := g.cfg.Persist
	g.mu.Unlock()
	if store == nil {
		return ErrNoPersistStore
	}

	blob, ok, err := store.Load()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var zero uint32
	return g.AddEntropy(Text(blob), &zero, "loadpool")
}

// SavePersisted draws 128 bits (4 words) from RandomWords and writes them to
// the configured PersistStore.
func (g *Generator) SavePersisted() error {
	g.mu.Lock()
	store := g.cfg.Persist
	g.mu.Unlock()
	if store == nil {
		return ErrNoPersistStore
	}

	words, err := g.RandomWords(4, nil)
	if err != nil {
		return err
	}
	blob := wordsToBytes(words)
	return store.Save(blob)
}
