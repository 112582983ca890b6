package inventoryclient_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/medstock/pkg/inventoryclient"
)

func TestStore_ReplaceCopia(t *testing.T) {
	var s inventoryclient.Store
	assert.NotNil(t, s.Current())
	assert.Empty(t, s.Current())

	in := []inventoryclient.Item{{ID: "a"}, {ID: "b"}}
	s.Replace(in)
	in[0].ID = "mutado"

	cur := s.Current()
	assert.Equal(t, "a", cur[0].ID)
	cur[1].ID = "otro"
	assert.Equal(t, "b", s.Current()[1].ID)
}

func TestStore_Concurrente(t *testing.T) {
	var s inventoryclient.Store
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); s.Replace([]inventoryclient.Item{{ID: "x"}}) }()
		go func() { defer wg.Done(); _ = s.Current() }()
	}
	wg.Wait()
	assert.Len(t, s.Current(), 1)
}
