package printer

import (
	"strings"
	"testing"
)

func TestRenderTree(t *testing.T) {
	tree := &Node{Name: "groups"}
	group := tree.Add("VK_KHR_a")
	group.Add("vkCmdA")
	group.Add("vkCmdB")
	tree.Add("VK_KHR_b").Add("vkCmdC")

	rendered, err := RenderTree(tree)
	if err != nil {
		t.Fatalf("RenderTree failed: %v", err)
	}

	for _, name := range []string{"groups", "VK_KHR_a", "vkCmdA", "vkCmdB", "VK_KHR_b", "vkCmdC"} {
		if !strings.Contains(rendered, name) {
			t.Errorf("Expected %s in tree:\n%s", name, rendered)
		}
	}
	if strings.Index(rendered, "vkCmdB") > strings.Index(rendered, "VK_KHR_b") {
		t.Errorf("Expected children before the next sibling:\n%s", rendered)
	}
	t.Logf("Tree:\n%s", rendered)
}
