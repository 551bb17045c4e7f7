package analysis

import (
	"context"
	"sync"
)

// fakeCompleter is a scripted Completer for pipeline tests.
type fakeCompleter struct {
	response string
	err      error

	mu      sync.Mutex
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// singleFactory hands out the same completer for every call.
func singleFactory(c Completer) Factory {
	return func() Completer { return c }
}

// sequenceFactory hands out one completer per call, in order, then nil.
func sequenceFactory(completers ...Completer) Factory {
	i := 0
	return func() Completer {
		if i >= len(completers) {
			return nil
		}
		c := completers[i]
		i++
		return c
	}
}

// unavailableFactory simulates no configured model.
func unavailableFactory() Factory {
	return func() Completer { return nil }
}
