// Package dimacs reads and writes SAT problems in the DIMACS CNF exchange
// format, instantiates solvers from parsed instances, and reports verdicts
// in the standard solver output format.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dpll/internal/sat"
)

type Instance struct {
	Variables int
	Clauses   [][]int
	Comments  []string
}

// ParseDIMACS parses the DIMACS CNF file, transparently decompressing it if
// gzipped is true.
func ParseDIMACS(filename string, gzipped bool) (*Instance, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

// Read parses a DIMACS CNF stream. Comment lines start with "c" and may
// appear anywhere. The header line "p cnf <variables> <clauses>" must come
// before the first clause and appear exactly once. Clauses are sequences of
// non-zero literals terminated by 0; a clause may span lines and a line may
// hold several clauses. A "%" line ends the instance, ignoring everything
// after it. A clause left unterminated at the end of the input is dropped.
func Read(r io.Reader) (*Instance, error) {
	instance := &Instance{}
	clause := []int{}
	scanner := bufio.NewScanner(r)
	stop := false
	for scanner.Scan() && !stop {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case '%': // end of instance
			stop = true
		case 'c':
			instance.Comments = append(instance.Comments, line)
		case 'p':
			if err := parseHeaderLine(instance, line); err != nil {
				return nil, err
			}
		default:
			rest, err := parseClauseTokens(instance, clause, line)
			if err != nil {
				return nil, err
			}
			clause = rest
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return instance, nil
}

func parseHeaderLine(instance *Instance, line string) error {
	if instance.Clauses != nil {
		return fmt.Errorf("found a second header line %q", line)
	}
	parts := strings.Fields(line)
	if len(parts) != 4 || parts[0] != "p" {
		return fmt.Errorf("malformed header line %q", line)
	}
	if parts[1] != "cnf" {
		return fmt.Errorf("instances of type %q are not supported", parts[1])
	}
	nVars, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("could not parse header: %w", err)
	}
	nClauses, err := strconv.Atoi(parts[3])
	if err != nil {
		return fmt.Errorf("could not parse header: %w", err)
	}
	if nVars < 0 || nClauses < 0 {
		return fmt.Errorf("header %q declares negative sizes", line)
	}
	instance.Variables = nVars
	instance.Clauses = make([][]int, 0, nClauses)
	return nil
}

// parseClauseTokens adds the literals of one line to the clause being built
// and returns what remains open. A 0 token closes the current clause; a 0
// with no pending literals closes nothing.
func parseClauseTokens(instance *Instance, clause []int, line string) ([]int, error) {
	if instance.Clauses == nil {
		return nil, fmt.Errorf("found clause line %q before the header", line)
	}
	for _, tok := range strings.Fields(line) {
		l, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("could not parse literal %q: %w", tok, err)
		}
		if l == 0 {
			if len(clause) > 0 {
				instance.Clauses = append(instance.Clauses, clause)
				clause = []int{}
			}
			continue
		}
		if l > instance.Variables || -l > instance.Variables {
			return nil, fmt.Errorf("literal %d is outside the declared range [1, %d]", l, instance.Variables)
		}
		clause = append(clause, l)
	}
	return clause, nil
}

// Instantiate builds a solver for the instance.
func Instantiate(instance *Instance, ops sat.Options) (*sat.Solver, error) {
	return sat.NewSolver(instance.Variables, instance.Clauses, ops)
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}
