package record

import "log"

// Keeper holds the best score in memory and mirrors improvements to a Store.
// Persistence problems are logged and never returned: the game keeps running
// with the in-memory value. It is used from the game loop only and is not safe
// for concurrent use.
type Keeper struct {
	store Store
	best  int
}

// NewKeeper wraps store. A nil store keeps the record in memory only.
func NewKeeper(store Store) *Keeper {
	return &Keeper{store: store}
}

// Load reads the persisted record once. On failure the record starts at 0.
func (k *Keeper) Load() int {
	if k.store == nil {
		return k.best
	}
	n, err := k.store.Read()
	if err != nil {
		log.Printf("WARNING: could not read record, starting from 0: %v", err)
		n = 0
	}
	if n > k.best {
		k.best = n
	}
	return k.best
}

func (k *Keeper) Best() int {
	return k.best
}

// Submit records score if it beats the current best and reports whether it did.
// The in-memory record is raised even when the write fails.
func (k *Keeper) Submit(score int) bool {
	if score <= k.best {
		return false
	}
	k.best = score
	if k.store != nil {
		if err := k.store.Write(score); err != nil {
			log.Printf("WARNING: could not save record %d: %v", score, err)
		}
	}
	return true
}
