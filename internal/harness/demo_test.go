package harness

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uidbench/internal/bench"
	"github.com/roach88/uidbench/internal/store"
)

func TestDemo_InsertsFixedRecords(t *testing.T) {
	st := store.New()
	var buf bytes.Buffer

	err := Demo(st, &buf, bench.NewPrinter("en-US"))
	require.NoError(t, err)

	assert.Equal(t, 3, st.Size())

	rec, ok := st.LookupString("ABCDEFG")
	require.True(t, ok)
	assert.Equal(t, "Тестовая запись 1", rec.Payload())

	rec, ok = st.LookupString("HIJKLMN")
	require.True(t, ok)
	assert.Equal(t, "Тестовая запись 2", rec.Payload())

	rec, ok = st.LookupString("OPQRSTU")
	require.True(t, ok)
	assert.Equal(t, "Тестовая запись 3", rec.Payload())

	_, ok = st.LookupString("XXXXXXX")
	assert.False(t, ok)
}

func TestDemo_Output(t *testing.T) {
	st := store.New()
	var buf bytes.Buffer

	err := Demo(st, &buf, bench.NewPrinter("en-US"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "UID=ABCDEFG")
	assert.Contains(t, out, "Тестовая запись 1")
	assert.Contains(t, out, "No record with UID=XXXXXXX (expected)")
	assert.Contains(t, out, "Records in demo store: 3")
}

func TestDemo_DuplicateStoreRejected(t *testing.T) {
	// Running the demo twice against the same store hits the
	// duplicate-UID rejection on the first insert.
	st := store.New()
	var buf bytes.Buffer
	p := bench.NewPrinter("en-US")

	require.NoError(t, Demo(st, &buf, p))

	err := Demo(st, &buf, p)
	require.Error(t, err)
	assert.True(t, store.IsDuplicateUID(err))
	assert.Equal(t, 3, st.Size())
}
