package retrieval

import (
	"context"
	"testing"
)

func TestMemoryIndexRetrieve(t *testing.T) {
	idx := NewMemoryIndex([]string{
		"Loops repeat a block of statements until a condition fails.",
		"Variables name storage locations for values.",
		"Functions bundle reusable logic under a name.",
		"   ",
	})
	if idx.Len() != 3 {
		t.Fatalf("Len = %d, blank passages should be skipped", idx.Len())
	}

	got, err := idx.Retrieve(context.Background(), "how do loops repeat?", 2)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected at least one hit")
	}
	if got[0].Content != "Loops repeat a block of statements until a condition fails." {
		t.Errorf("best hit = %q", got[0].Content)
	}
	if got[0].Score <= 0 {
		t.Errorf("score = %v, want positive", got[0].Score)
	}
}

func TestMemoryIndexTopK(t *testing.T) {
	idx := NewMemoryIndex([]string{
		"alpha beta", "alpha gamma", "alpha delta",
	})
	got, err := idx.Retrieve(context.Background(), "alpha", 2)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d passages, want k=2", len(got))
	}

	if got, _ := idx.Retrieve(context.Background(), "alpha", 0); got != nil {
		t.Error("k=0 returns nothing")
	}
}

func TestMemoryIndexNoMatch(t *testing.T) {
	idx := NewMemoryIndex([]string{"alpha beta"})
	got, err := idx.Retrieve(context.Background(), "zeta", 3)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no hits for a disjoint query", got)
	}
}

func TestMemoryIndexChinese(t *testing.T) {
	idx := NewMemoryIndex([]string{
		"循环重复执行一段代码",
		"变量用来存储数据",
	})
	got, err := idx.Retrieve(context.Background(), "什么是循环", 1)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(got) != 1 || got[0].Content != "循环重复执行一段代码" {
		t.Errorf("got %v, want the loop passage", got)
	}
}
