package fragment

import (
	"testing"
)

func TestBlockDropsEmptyGuard(t *testing.T) {
	block := NewBlock("DECLARE")
	block.Open("defined(VK_KHR_a)")
	block.Close("VK_KHR_a")
	block.Open("defined(VK_KHR_b)")
	block.Write("int b;\n")
	block.Close("VK_KHR_b")

	expected := "#if defined(VK_KHR_b)\nint b;\n#endif /* VK_KHR_b */\n"
	if got := block.String(); got != expected {
		t.Fatalf("Expected %q, got %q", expected, got)
	}
}

func TestBlockNested(t *testing.T) {
	block := NewBlock("DECLARE")
	block.Write("// head\n")
	block.Open("A")
	block.Open("B")
	block.Close("B")
	block.Close("A")
	block.Open("C")
	block.Open("D")
	block.Write("d\n")
	block.Close("D")
	block.Close("C")

	expected := "// head\n#if C\n#if D\nd\n#endif /* D */\n#endif /* C */\n"
	if got := block.String(); got != expected {
		t.Fatalf("Expected %q, got %q", expected, got)
	}
}

func TestBlocksMap(t *testing.T) {
	blocks := NewBlocks("STATIC_PFN", "DEFINE")
	blocks.Open("defined(VK_EXT_a)")
	blocks.Get("DEFINE").Write("#define NVVK_HAS_VK_EXT_a\n")
	blocks.Close("VK_EXT_a")

	rendered := blocks.Map()
	if rendered["STATIC_PFN"] != "" {
		t.Errorf("Expected empty STATIC_PFN, got %q", rendered["STATIC_PFN"])
	}
	expected := "#if defined(VK_EXT_a)\n#define NVVK_HAS_VK_EXT_a\n#endif /* VK_EXT_a */\n"
	if rendered["DEFINE"] != expected {
		t.Errorf("Expected %q, got %q", expected, rendered["DEFINE"])
	}
	if len(blocks.Names()) != 2 || blocks.Names()[0] != "STATIC_PFN" {
		t.Errorf("Unexpected block order %v", blocks.Names())
	}
}
