// Package seed provides seed generation for the random source behind image synthesis.
// A deterministic seed makes the same prompt render the same picture.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run, default).
	ModeRandom Mode = "random"
	// ModePrompt derives the seed from a hash of the prompt text.
	ModePrompt Mode = "prompt"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// prompts are hashed in ModePrompt and must not be empty in that mode.
func Calculate(config Config, prompts ...string) (int64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModePrompt:
		if len(prompts) == 0 {
			return 0, fmt.Errorf("at least one prompt is required for prompt-based seed mode")
		}
		return CalculatePromptSeed(prompts...), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculatePromptSeed hashes the prompts, ignoring surrounding whitespace
// and case, into a deterministic seed.
func CalculatePromptSeed(prompts ...string) int64 {
	hasher := sha256.New()
	for _, p := range prompts {
		hasher.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		// Separator so that ["ab", "c"] and ["a", "bc"] differ
		hasher.Write([]byte{0})
	}
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// NewRand returns a math/rand generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- image synthesis, not cryptography
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModePrompt, ModeManual}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, prompt, manual)", s)
}
