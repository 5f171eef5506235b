package vm

import (
	"strings"
	"testing"

	"github.com/funvibe/bfk/internal/lexer"
	"github.com/funvibe/bfk/internal/pipeline"
)

func compile(src string) (*Chunk, error) {
	return NewCompiler().Compile(lexer.New(src).Tokenize())
}

func mustCompile(t *testing.T, src string) *Chunk {
	t.Helper()
	chunk, err := compile(src)
	if err != nil {
		t.Fatalf("compile error: %s", err)
	}
	return chunk
}

func TestCompileNestedPairs(t *testing.T) {
	chunk := mustCompile(t, "+[>[-]<]")

	// Inner pair closes first, so it is recorded first.
	want := []JumpPair{{Start: 3, End: 5}, {Start: 1, End: 7}}
	if len(chunk.Jumps) != len(want) {
		t.Fatalf("wrong pair count. got=%d, want=%d", len(chunk.Jumps), len(want))
	}
	for i, jp := range want {
		if chunk.Jumps[i] != jp {
			t.Errorf("pair %d: got=%+v, want=%+v", i, chunk.Jumps[i], jp)
		}
	}
}

func TestCompilePairPerOpener(t *testing.T) {
	sources := []string{"[]", "[[]]", "+[-]+[-]", "[][][]", "++[>[-]<[+]]"}
	for _, src := range sources {
		chunk := mustCompile(t, src)

		openers := strings.Count(src, "[")
		if len(chunk.Jumps) != openers {
			t.Errorf("%q: got %d pairs, want %d", src, len(chunk.Jumps), openers)
		}
		for _, jp := range chunk.Jumps {
			if jp.Start >= jp.End {
				t.Errorf("%q: pair %+v has start >= end", src, jp)
			}
		}
	}
}

func TestCompileZeroWidthPair(t *testing.T) {
	chunk := mustCompile(t, "[]")
	if len(chunk.Jumps) != 1 {
		t.Fatalf("wrong pair count. got=%d, want=1", len(chunk.Jumps))
	}
	if chunk.Jumps[0] != (JumpPair{Start: 0, End: 1}) {
		t.Errorf("got=%+v, want={0 1}", chunk.Jumps[0])
	}
}

func TestCompileEmptyInput(t *testing.T) {
	chunk := mustCompile(t, "")
	if chunk.Len() != 0 {
		t.Errorf("empty input compiled to %d instructions", chunk.Len())
	}
	if len(chunk.Jumps) != 0 {
		t.Errorf("empty input produced %d pairs", len(chunk.Jumps))
	}
}

func TestCompileMismatchedClose(t *testing.T) {
	_, err := compile("][")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.Contains(err.Error(), "mismatched ']' at instruction 0") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestCompileUnmatchedOpeners(t *testing.T) {
	_, err := compile("[[+")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.Contains(err.Error(), "2 unmatched '['") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestCompilerProcessor(t *testing.T) {
	ctx := pipeline.NewPipelineContext("+[-]")
	ctx.FilePath = "prog.bf"
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&CompilerProcessor{}).Process(ctx)

	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	chunk, ok := ctx.Chunk.(*Chunk)
	if !ok {
		t.Fatalf("context chunk is %T, want *Chunk", ctx.Chunk)
	}
	if chunk.File != "prog.bf" {
		t.Errorf("chunk file: got=%q, want=%q", chunk.File, "prog.bf")
	}
	if ctx.CompileDuration <= 0 {
		t.Errorf("compile duration not recorded")
	}
}

func TestCompilerProcessorInvalidInput(t *testing.T) {
	ctx := pipeline.NewPipelineContext("][")
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&CompilerProcessor{}).Process(ctx)

	if len(ctx.Errors) == 0 {
		t.Fatal("expected errors, got none")
	}
	if ctx.Chunk != nil {
		t.Errorf("invalid input still produced a chunk")
	}
}
