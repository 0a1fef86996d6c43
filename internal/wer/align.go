package wer

// OpKind labels one step of an alignment.
type OpKind byte

const (
	Hit          OpKind = '='
	Substitution OpKind = 'S'
	Deletion     OpKind = 'D'
	Insertion    OpKind = 'I'
)

// Op pairs a reference token with a hypothesis token. Ref is empty for an
// insertion and Hyp is empty for a deletion.
type Op struct {
	Kind OpKind
	Ref  string
	Hyp  string
}

// Counts tallies the operations of one or more alignments.
type Counts struct {
	Hits          int
	Substitutions int
	Deletions     int
	Insertions    int
}

func (c *Counts) add(o Counts) {
	c.Hits += o.Hits
	c.Substitutions += o.Substitutions
	c.Deletions += o.Deletions
	c.Insertions += o.Insertions
}

func (c *Counts) count(k OpKind) {
	switch k {
	case Hit:
		c.Hits++
	case Substitution:
		c.Substitutions++
	case Deletion:
		c.Deletions++
	case Insertion:
		c.Insertions++
	}
}

// Errors returns substitutions + deletions + insertions.
func (c Counts) Errors() int { return c.Substitutions + c.Deletions + c.Insertions }

// editDistance fills the minimum edit distance table between ref and hyp.
func editDistance(ref, hyp []string) [][]int {
	n, m := len(ref), len(hyp)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ref[i-1] == hyp[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				d[i][j] = 1 + min(d[i-1][j-1], d[i-1][j], d[i][j-1])
			}
		}
	}
	return d
}

// Align returns a minimum edit alignment of hyp against ref, in order.
// Ties prefer a hit, then a substitution, then a deletion.
func Align(ref, hyp []string) ([]Op, Counts) {
	d := editDistance(ref, hyp)
	var ops []Op
	var c Counts
	i, j := len(ref), len(hyp)
	for i > 0 || j > 0 {
		var op Op
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1]:
			op = Op{Hit, ref[i-1], hyp[j-1]}
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			op = Op{Substitution, ref[i-1], hyp[j-1]}
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			op = Op{Deletion, ref[i-1], ""}
			i--
		default:
			op = Op{Insertion, "", hyp[j-1]}
			j--
		}
		c.count(op.Kind)
		ops = append(ops, op)
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops, c
}

// countOps gives the same counts as Align in two rows of memory. Every cell
// keeps the counts of the path the backtrace of Align would take through it.
func countOps(ref, hyp []string) Counts {
	type cell struct {
		dist int
		Counts
	}
	m := len(hyp)
	prev := make([]cell, m+1)
	cur := make([]cell, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1]
		prev[j].dist++
		prev[j].Insertions++
	}
	for i := 1; i <= len(ref); i++ {
		cur[0] = prev[0]
		cur[0].dist++
		cur[0].Deletions++
		for j := 1; j <= m; j++ {
			diag, up, left := prev[j-1], prev[j], cur[j-1]
			var c cell
			if ref[i-1] == hyp[j-1] {
				c = diag
				c.Hits++
			} else {
				dist := 1 + min(diag.dist, up.dist, left.dist)
				switch dist {
				case diag.dist + 1:
					c = diag
					c.Substitutions++
				case up.dist + 1:
					c = up
					c.Deletions++
				default:
					c = left
					c.Insertions++
				}
				c.dist = dist
			}
			cur[j] = c
		}
		prev, cur = cur, prev
	}
	return prev[m].Counts
}
