package transcript

import "sync"

// CandidateInfo holds facts inferred or configured about the candidate.
// Last write wins per key; updated opportunistically during the session.
type CandidateInfo struct {
	mu   sync.Mutex
	info map[string]string
}

// NewCandidateInfo creates an empty candidate record.
func NewCandidateInfo() *CandidateInfo {
	return &CandidateInfo{info: make(map[string]string)}
}

// Set stores a fact about the candidate.
func (c *CandidateInfo) Set(key, value string) {
	c.mu.Lock()
	c.info[key] = value
	c.mu.Unlock()
}

// Get returns the stored value, or fallback when absent or empty.
func (c *CandidateInfo) Get(key, fallback string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v := c.info[key]; v != "" {
		return v
	}
	return fallback
}

// Has reports whether a non-empty value exists for key.
func (c *CandidateInfo) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info[key] != ""
}

// Snapshot returns a copy of all stored facts.
func (c *CandidateInfo) Snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.info))
	for k, v := range c.info {
		out[k] = v
	}
	return out
}
