package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

func salesTable(rows ...[]string) Table {
	return NewTable([]string{"Year", "Month", "Sales", "Site"}, rows)
}

func TestIngest(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		policy   DuplicatePolicy
		wantErr  error
		validate func(t *testing.T, ds *Dataset, err error)
	}{
		{
			name: "Arquivo válido - deve indexar por site, ano e mês",
			table: salesTable(
				[]string{"2023", "Jan", "1000", "A"},
				[]string{"2023", "Feb", "1500.5", "B"},
				[]string{"2024", "Jan", "2000", "A"},
			),
			validate: func(t *testing.T, ds *Dataset, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"A", "B"}, ds.Sites())
				assert.Equal(t, 1000.0, ds.Lookup("A", 2023, domain.Jan))
				assert.Equal(t, 1500.5, ds.Lookup("B", 2023, domain.Feb))
				assert.Equal(t, 2000.0, ds.Lookup("A", 2024, domain.Jan))
				assert.Equal(t, []int{2023, 2024}, ds.Years())
				assert.Equal(t, 3, ds.Len())
				assert.Equal(t, 3, ds.Rows())
			},
		},
		{
			name: "Chave duplicada - último valor prevalece",
			table: salesTable(
				[]string{"2023", "Jan", "1000", "A"},
				[]string{"2023", "Jan", "3000", "A"},
			),
			validate: func(t *testing.T, ds *Dataset, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3000.0, ds.Lookup("A", 2023, domain.Jan))
				assert.Equal(t, 1, ds.Len())
				assert.Len(t, ds.Entries("A"), 1)
			},
		},
		{
			name:   "Chave duplicada com política de soma",
			policy: Accumulate,
			table: salesTable(
				[]string{"2023", "Jan", "1000", "A"},
				[]string{"2023", "Jan", "3000", "A"},
			),
			validate: func(t *testing.T, ds *Dataset, err error) {
				require.NoError(t, err)
				assert.Equal(t, 4000.0, ds.Lookup("A", 2023, domain.Jan))
				assert.Equal(t, 1, ds.Len())
			},
		},
		{
			name:    "Coluna Site ausente - erro de schema",
			table:   NewTable([]string{"Year", "Month", "Sales"}, [][]string{{"2023", "Jan", "10"}}),
			wantErr: ErrSchema,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var schemaErr *SchemaError
				require.True(t, errors.As(err, &schemaErr))
				assert.Equal(t, []string{"Site"}, schemaErr.Missing)
			},
		},
		{
			name:    "Ano com valor decimal - erro de tipo",
			table:   salesTable([]string{"2023.5", "Jan", "10", "A"}),
			wantErr: ErrType,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, ColumnYear, typeErr.Column)
				assert.Zero(t, typeErr.Row)
			},
		},
		{
			name:    "Mês numérico - erro de tipo na coluna",
			table:   salesTable([]string{"2023", "1", "10", "A"}),
			wantErr: ErrType,
		},
		{
			name:    "Vendas com texto - erro de tipo",
			table:   salesTable([]string{"2023", "Jan", "dez mil", "A"}),
			wantErr: ErrType,
		},
		{
			name:    "Mês desconhecido - erro de tipo na linha",
			table:   salesTable([]string{"2023", "Jan", "10", "A"}, []string{"2023", "Foo", "10", "A"}),
			wantErr: ErrType,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, 2, typeErr.Row)
			},
		},
		{
			name:    "Vendas NaN - erro de tipo na linha",
			table:   salesTable([]string{"2024", "Feb", "100", "A"}, []string{"2024", "Mar", "NaN", "A"}),
			wantErr: ErrType,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, ColumnSales, typeErr.Column)
				assert.Equal(t, 2, typeErr.Row)
				assert.Equal(t, "NaN", typeErr.Found)
			},
		},
		{
			name:    "Vendas infinitas - erro de tipo",
			table:   salesTable([]string{"2024", "Mar", "-Inf", "A"}),
			wantErr: ErrType,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, 1, typeErr.Row)
			},
		},
		{
			name:    "Soma acumulada estoura o intervalo",
			policy:  Accumulate,
			table:   salesTable([]string{"2024", "Mar", "1.7e308", "A"}, []string{"2024", "Mar", "1.7e308", "A"}),
			wantErr: ErrType,
			validate: func(t *testing.T, ds *Dataset, err error) {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, 2, typeErr.Row)
			},
		},
		{
			name:    "Arquivo sem linhas",
			table:   salesTable(),
			wantErr: ErrEmptyTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Ingest(tt.table, tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, ds)
			}
			if tt.validate != nil {
				tt.validate(t, ds, err)
			}
		})
	}
}

func TestIngest_IgnoresExtraColumns(t *testing.T) {
	table := NewTable(
		[]string{"Region", "Site", "Sales", "Month", "Year"},
		[][]string{{"North", "Store 1", "120", "Mar", "2021"}},
	)

	ds, err := Ingest(table, Overwrite)
	require.NoError(t, err)
	assert.Equal(t, 120.0, ds.Lookup("Store 1", 2021, domain.Mar))
}

func TestLookup_MissingReturnsZero(t *testing.T) {
	ds := New(Overwrite)
	ds.Set("A", 2023, domain.Jan, 10)

	assert.Equal(t, 0.0, ds.Lookup("A", 2023, domain.Feb))
	assert.Equal(t, 0.0, ds.Lookup("B", 2023, domain.Jan))
	assert.True(t, ds.Has("A", 2023, domain.Jan))
	assert.False(t, ds.Has("A", 2022, domain.Jan))
	assert.False(t, ds.HasSite("B"))
}

func TestEntries_YearAscendingThenInsertion(t *testing.T) {
	ds := New(Overwrite)
	ds.Set("A", 2024, domain.Mar, 1)
	ds.Set("A", 2023, domain.Dec, 2)
	ds.Set("A", 2024, domain.Jan, 3)
	ds.Set("A", 2023, domain.Feb, 4)

	entries := ds.Entries("A")
	require.Len(t, entries, 4)
	assert.Equal(t, domain.Observation{Site: "A", Year: 2023, Month: domain.Dec, Sales: 2}, entries[0])
	assert.Equal(t, domain.Observation{Site: "A", Year: 2023, Month: domain.Feb, Sales: 4}, entries[1])
	assert.Equal(t, domain.Observation{Site: "A", Year: 2024, Month: domain.Mar, Sales: 1}, entries[2])
	assert.Equal(t, domain.Observation{Site: "A", Year: 2024, Month: domain.Jan, Sales: 3}, entries[3])
}

func TestInferKind(t *testing.T) {
	assert.Equal(t, KindInteger, InferKind([]string{"1", "2", "-3"}))
	assert.Equal(t, KindFloat, InferKind([]string{"1", "2.5"}))
	assert.Equal(t, KindFloat, InferKind([]string{"1", ""}))
	assert.Equal(t, KindFloat, InferKind([]string{"", ""}))
	assert.Equal(t, KindString, InferKind([]string{"1", "Jan"}))
	assert.Equal(t, KindString, InferKind([]string{"", "Jan"}))
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := ParseDuplicatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, Overwrite, p)

	p, err = ParseDuplicatePolicy("accumulate")
	require.NoError(t, err)
	assert.Equal(t, Accumulate, p)

	_, err = ParseDuplicatePolicy("sum")
	assert.ErrorIs(t, err, ErrDuplicatePolicy)
}
