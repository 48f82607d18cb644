package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(titles ...string) *List {
	l := New()
	for _, title := range titles {
		l.Insert(title, StatusPending)
	}
	return l
}

func TestList_Insert(t *testing.T) {
	t.Run("appends to pending with caller status", func(t *testing.T) {
		l := seeded("A")

		entry := l.Insert("B", "someday")

		assert.Equal(t, 1, entry.Index)
		listing := l.List()
		require.Len(t, listing.Pending, 2)
		last := listing.Pending[len(listing.Pending)-1]
		assert.Equal(t, 1, last.Index)
		assert.Equal(t, "B", last.Title)
		assert.Equal(t, "someday", last.Status)
		assert.Empty(t, listing.Done)
	})

	t.Run("accepts empty strings", func(t *testing.T) {
		l := New()
		l.Insert("", "")

		require.Len(t, l.Pending, 1)
		assert.Equal(t, Task{}, l.Pending[0])
	})

	t.Run("keeps DONE status in pending", func(t *testing.T) {
		l := New()
		l.Insert("odd", StatusDone)

		require.Len(t, l.Pending, 1)
		assert.Empty(t, l.Done)
		assert.Equal(t, StatusDone, l.Pending[0].Status)
	})
}

func TestList_Complete(t *testing.T) {
	tests := []struct {
		name        string
		titles      []string
		index       int
		wantPending []string
		wantMoved   string
	}{
		{name: "first", titles: []string{"A", "B", "C"}, index: 0, wantPending: []string{"B", "C"}, wantMoved: "A"},
		{name: "middle", titles: []string{"A", "B", "C"}, index: 1, wantPending: []string{"A", "C"}, wantMoved: "B"},
		{name: "last", titles: []string{"A", "B", "C"}, index: 2, wantPending: []string{"A", "B"}, wantMoved: "C"},
		{name: "only", titles: []string{"A"}, index: 0, wantPending: []string{}, wantMoved: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := seeded(tt.titles...)
			l.Pending[tt.index].Status = "whatever"
			l.Done = append(l.Done, Task{Title: "earlier", Status: StatusDone})

			task, err := l.Complete(tt.index)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMoved, task.Title)
			assert.Equal(t, StatusDone, task.Status)
			assert.Equal(t, tt.wantPending, titles(l.Pending))
			require.Len(t, l.Done, 2)
			assert.Equal(t, Task{Title: tt.wantMoved, Status: StatusDone}, l.Done[1])
		})
	}
}

func TestList_Delete(t *testing.T) {
	t.Run("shifts later tasks down", func(t *testing.T) {
		l := seeded("A", "B")

		task, err := l.Delete(0)
		require.NoError(t, err)

		assert.Equal(t, "A", task.Title)
		listing := l.List()
		require.Len(t, listing.Pending, 1)
		assert.Equal(t, 0, listing.Pending[0].Index)
		assert.Equal(t, "B", listing.Pending[0].Title)
	})

	t.Run("leaves done unchanged", func(t *testing.T) {
		l := seeded("A", "B", "C")
		_, err := l.Complete(2)
		require.NoError(t, err)
		done := append([]Task(nil), l.Done...)

		_, err = l.Delete(1)
		require.NoError(t, err)

		assert.Equal(t, []string{"A"}, titles(l.Pending))
		assert.Equal(t, done, l.Done)
	})
}

func TestList_InvalidIndex(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		index  int
	}{
		{name: "empty pending", index: 0},
		{name: "equal to length", titles: []string{"A", "B"}, index: 2},
		{name: "past length", titles: []string{"A"}, index: 10},
		{name: "negative", titles: []string{"A"}, index: -1},
	}

	ops := map[string]func(*List, int) (Task, error){
		"complete": (*List).Complete,
		"delete":   (*List).Delete,
	}

	for opName, op := range ops {
		for _, tt := range tests {
			t.Run(opName+"/"+tt.name, func(t *testing.T) {
				l := seeded(tt.titles...)
				l.Done = append(l.Done, Task{Title: "kept", Status: StatusDone})
				before := l.Clone()

				_, err := op(l, tt.index)

				require.ErrorIs(t, err, ErrInvalidIndex)
				assert.Equal(t, before, l)
			})
		}
	}
}

func TestList_Scenario(t *testing.T) {
	l := New()

	l.Insert("Buy milk", StatusPending)
	listing := l.List()
	assert.Equal(t, []Entry{{Index: 0, Task: Task{Title: "Buy milk", Status: StatusPending}}}, listing.Pending)
	assert.Empty(t, listing.Done)

	_, err := l.Complete(0)
	require.NoError(t, err)

	listing = l.List()
	assert.Empty(t, listing.Pending)
	assert.Equal(t, []Entry{{Index: 0, Task: Task{Title: "Buy milk", Status: StatusDone}}}, listing.Done)

	_, err = l.Complete(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestList_Clone(t *testing.T) {
	l := seeded("A", "B")
	c := l.Clone()

	_, err := c.Complete(0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, titles(l.Pending))
	assert.Empty(t, l.Done)
	assert.Equal(t, []string{"B"}, titles(c.Pending))
}

func titles(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
