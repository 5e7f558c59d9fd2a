package reconcile

import "context"

type mockAdapter struct {
	refs       map[string][]string
	targets    map[string]struct{}
	refsErr    error
	targetsErr error
	lookedUp   [][]string
}

func (m *mockAdapter) Name() string { return "mock" }

func (m *mockAdapter) LoadReferences(context.Context) (map[string][]string, error) {
	return m.refs, m.refsErr
}

func (m *mockAdapter) LoadTargets(_ context.Context, keys []string) (map[string]struct{}, error) {
	m.lookedUp = append(m.lookedUp, keys)
	if m.targetsErr != nil {
		return nil, m.targetsErr
	}
	out := make(map[string]struct{})
	for _, k := range keys {
		if _, ok := m.targets[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out, nil
}

type mockBatchMutator struct {
	mockAdapter
	batchCalls [][]string
	err        error
}

func (m *mockBatchMutator) DeleteReferrersBatch(_ context.Context, keys []string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.batchCalls = append(m.batchCalls, keys)
	var n int64
	for _, k := range keys {
		n += int64(len(m.refs[k]))
	}
	return n, nil
}
