package pool

import (
	"strings"
	"testing"
)

const bankCSV = `problem,answer,solution,level,type
"What is 2+2?",4,"2+2 = 4",Level 1,arithmetic
"What is 3+5?",8,"3+5 = 8",Level 1 ,arithmetic
"Solve x+1=2",1,"x = 2-1 = 1",Level 2, algebra
"Broken row",,"no answer",Level 1,arithmetic
"Unknown level",9,"",Level ?,arithmetic
`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(bankCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The empty-answer and "Level ?" rows are dropped.
	if p.Size() != 3 {
		t.Errorf("Size() = %d, want 3", p.Size())
	}

	// Level and type labels come back trimmed.
	if got := p.Count("arithmetic", "Level 1"); got != 2 {
		t.Errorf("Count(arithmetic, Level 1) = %d, want 2", got)
	}
	if got := p.Count("algebra", "Level 2"); got != 1 {
		t.Errorf("Count(algebra, Level 2) = %d, want 1", got)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("problem,answer,level\np,a,Level 1\n"))
	if err == nil || !strings.Contains(err.Error(), "missing column") {
		t.Errorf("Load = %v, want missing column error", err)
	}
}

func TestLoad_NoUsableRows(t *testing.T) {
	csv := "problem,answer,solution,level,type\np,,s,Level 1,t\n"
	if _, err := Load(strings.NewReader(csv)); err == nil {
		t.Error("Load with only unusable rows should fail")
	}
}
