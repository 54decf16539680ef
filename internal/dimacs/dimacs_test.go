package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/dpll/internal/sat"
)

var testInstance = Instance{
	Variables: 3,
	Clauses: [][]int{
		{1, 2, 3},
		{1, 2, -3},
		{1, -2, 3},
		{-1, 2, 3},
		{-1, -2, 3},
		{-1, 2, -3},
		{1, -2, -3},
		{-1, -2, -3},
	},
	Comments: []string{"c all sign patterns over three variables"},
}

func TestParseDIMACS_cnf(t *testing.T) {
	want := &testInstance

	got, err := ParseDIMACS("testdata/test_instance.cnf", false)

	if err != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_gzip(t *testing.T) {
	want := &testInstance

	got, err := ParseDIMACS("testdata/test_instance.cnf.gz", true)

	if err != nil {
		t.Errorf("ParseDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACS_noFile(t *testing.T) {
	got, err := ParseDIMACS("", false)

	if err == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
	if got != nil {
		t.Errorf("ParseDIMACS(): want nil instance, got %+v", got)
	}
}

func TestParseDIMACS_gzip_notGzipFile(t *testing.T) {
	got, err := ParseDIMACS("testdata/test_instance.cnf", true)

	if err == nil {
		t.Errorf("ParseDIMACS(): want error, got none")
	}
	if got != nil {
		t.Errorf("ParseDIMACS(): want nil instance, got %+v", got)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  Instance
	}{
		{
			desc:  "clause spanning lines",
			input: "p cnf 3 2\n1 2\n3 0\n-1 -2 -3 0\n",
			want: Instance{
				Variables: 3,
				Clauses:   [][]int{{1, 2, 3}, {-1, -2, -3}},
			},
		},
		{
			desc:  "several clauses on one line",
			input: "p cnf 2 2\n1 0 2 0\n",
			want: Instance{
				Variables: 2,
				Clauses:   [][]int{{1}, {2}},
			},
		},
		{
			desc:  "bare zero closes nothing",
			input: "p cnf 1 1\n0\n",
			want: Instance{
				Variables: 1,
				Clauses:   [][]int{},
			},
		},
		{
			desc:  "unterminated clause is dropped",
			input: "p cnf 2 2\n1 0\n2",
			want: Instance{
				Variables: 2,
				Clauses:   [][]int{{1}},
			},
		},
		{
			desc:  "percent line ends the instance",
			input: "p cnf 1 1\n1 0\n%\nnot even dimacs\n",
			want: Instance{
				Variables: 1,
				Clauses:   [][]int{{1}},
			},
		},
		{
			desc:  "comments anywhere",
			input: "c before\np cnf 2 2\n1 0\nc between\n2 0\n",
			want: Instance{
				Variables: 2,
				Clauses:   [][]int{{1}, {2}},
				Comments:  []string{"c before", "c between"},
			},
		},
		{
			desc:  "empty formula",
			input: "p cnf 0 0\n",
			want: Instance{
				Variables: 0,
				Clauses:   [][]int{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want.Variables, got.Variables)
			assert.Equal(t, tt.want.Clauses, got.Clauses)
			assert.Equal(t, tt.want.Comments, got.Comments)
		})
	}
}

func TestRead_errors(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{"clause before header", "1 2 0\np cnf 2 1\n"},
		{"second header", "p cnf 2 1\n1 0\np cnf 2 1\n"},
		{"missing header fields", "p cnf 2\n"},
		{"extra header fields", "p cnf 2 1 7\n"},
		{"unsupported problem type", "p wcnf 2 1\n1 0\n"},
		{"negative variable count", "p cnf -2 1\n"},
		{"literal is not a number", "p cnf 2 1\n1 x 0\n"},
		{"literal above declared range", "p cnf 2 1\n3 0\n"},
		{"literal below declared range", "p cnf 2 1\n-3 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestInstantiate(t *testing.T) {
	s, err := Instantiate(&testInstance, sat.DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumVariables())
	assert.Equal(t, 8, s.NumClauses())
}

func TestInstantiate_invalidClause(t *testing.T) {
	instance := &Instance{Variables: 1, Clauses: [][]int{{2}}}
	_, err := Instantiate(instance, sat.DefaultOptions)
	assert.Error(t, err)
}
