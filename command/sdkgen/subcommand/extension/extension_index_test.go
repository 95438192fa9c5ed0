package extension

import (
	"strings"
	"testing"
)

func TestIndexGroupOrder(t *testing.T) {
	idx := NewIndex(parseFixture(t), testOptions(false))

	expected := []string{
		"VK_VERSION_1_0",
		"VK_VERSION_1_4",
		"defined(VK_EXT_bar) && (defined(VK_KHR_foo) || defined(VK_VERSION_1_1))",
		"defined(VK_EXT_debug_thing)",
		"defined(VK_EXT_discard_rectangles)",
		"defined(VK_EXT_discard_rectangles) && VK_EXT_DISCARD_RECTANGLES_SPEC_VERSION >= 2",
		"defined(VK_KHR_bar_alias)",
		"defined(VK_KHR_discard_rectangles)",
		"defined(VK_KHR_enum)",
		"defined(VK_KHR_foo)",
		"defined(VK_KHR_legacy) && defined(VK_VERSION_1_1)",
		"defined(VK_KHR_shared_a)",
		"defined(VK_KHR_shared_b)",
		"defined(VK_KHR_swapchain)",
		"defined(VK_NV_shared_thing)",
	}

	keys := idx.Groups.Keys()
	if strings.Join(keys, "\n") != strings.Join(expected, "\n") {
		t.Fatalf("Unexpected group order:\n%s", strings.Join(keys, "\n"))
	}

	if !idx.Instance["vkGetPhysicalDeviceFooKHR"] || !idx.Instance["vkDebugThingEXT"] || !idx.Instance["vkEnumerateThingKHR"] {
		t.Errorf("Expected instance extension commands to be recorded, got %v", idx.Instance)
	}
	if idx.Instance["vkCmdBarEXT"] {
		t.Errorf("Device extension command recorded as instance")
	}
}

func TestIndexProvisional(t *testing.T) {
	idx := NewIndex(parseFixture(t), testOptions(false))
	if idx.Groups.Get("defined(VK_KHR_beta_thing)") != nil {
		t.Errorf("Expected provisional extension to be skipped")
	}

	idx = NewIndex(parseFixture(t), testOptions(true))
	group := idx.Groups.Get("defined(VK_KHR_beta_thing)")
	if group == nil || len(group.Commands) != 1 || group.Commands[0] != "vkCmdBetaKHR" {
		t.Errorf("Expected provisional extension with --beta")
	}
}

func TestIndexSkipsOtherApis(t *testing.T) {
	idx := NewIndex(parseFixture(t), testOptions(true))
	for _, key := range idx.Groups.Keys() {
		if strings.Contains(key, "VK_EXT_sc") || strings.Contains(key, "VKSC") || strings.Contains(key, "VK_KHR_disabled") {
			t.Errorf("Unexpected group %s", key)
		}
		if strings.Contains(key, "VK_KHR_empty") {
			t.Errorf("Require without commands created group %s", key)
		}
	}
}

func TestResolveSharedCommand(t *testing.T) {
	idx := NewIndex(parseFixture(t), testOptions(false))
	idx.Resolve()

	keys := idx.Groups.Keys()
	last := keys[len(keys)-1]
	if last != "defined(VK_KHR_shared_a) || defined(VK_KHR_shared_b)" {
		t.Fatalf("Expected disjunction group last, got %s", last)
	}
	if commands := idx.Groups.Get(last).Commands; len(commands) != 1 || commands[0] != "vkGetSharedKHR" {
		t.Errorf("Unexpected disjunction commands %v", commands)
	}
	if len(idx.Groups.Get("defined(VK_KHR_shared_a)").Commands) != 0 {
		t.Errorf("Expected shared command removed from its first owner")
	}
	if len(idx.Groups.Get("defined(VK_KHR_shared_b)").Commands) != 0 {
		t.Errorf("Expected shared command removed from its second owner")
	}

	// * every command lives in exactly one group
	seen := make(map[string]string)
	for _, key := range keys {
		for _, command := range idx.Groups.Get(key).Commands {
			if previous, ok := seen[command]; ok {
				t.Errorf("Command %s in both %s and %s", command, previous, key)
			}
			seen[command] = key
		}
	}
}

func TestGroupDeduplicates(t *testing.T) {
	groups := NewGroups()
	groups.Append("A", "vkB")
	groups.Append("A", "vkA")
	groups.Append("A", "vkB")

	group := groups.Get("A")
	if len(group.Commands) != 2 {
		t.Fatalf("Expected 2 commands, got %v", group.Commands)
	}
	if sorted := group.Sorted(); sorted[0] != "vkA" || sorted[1] != "vkB" {
		t.Errorf("Unexpected sort %v", sorted)
	}
	if group.Commands[0] != "vkB" {
		t.Errorf("Sorted mutated insertion order %v", group.Commands)
	}
}

func TestIndexAliasOfGatedCommand(t *testing.T) {
	idx := NewIndex(parseFixture(t), testOptions(false))
	idx.Resolve()

	gated := idx.Groups.Get("defined(VK_EXT_discard_rectangles) && VK_EXT_DISCARD_RECTANGLES_SPEC_VERSION >= 2")
	if gated == nil || len(gated.Commands) != 1 || gated.Commands[0] != "vkCmdSetDiscardRectangleEnableEXT" {
		t.Fatalf("Expected target in its gated group, got %v", gated)
	}

	alias := idx.Groups.Get("defined(VK_KHR_discard_rectangles)")
	if alias == nil || len(alias.Commands) != 1 || alias.Commands[0] != "vkCmdSetDiscardRectangleEnableKHR" {
		t.Fatalf("Expected alias in the plain group of its extension, got %v", alias)
	}

	for _, key := range idx.Groups.Keys() {
		if strings.HasPrefix(key, "defined(VK_KHR_discard_rectangles) &&") {
			t.Errorf("Alias inherited the gate of its target: %s", key)
		}
	}
}

func TestIndexAliasGatedByOwnName(t *testing.T) {
	options := testOptions(false)
	options.CommandVersions["vkCmdSetDiscardRectangleEnableKHR"] = 3
	idx := NewIndex(parseFixture(t), options)

	group := idx.Groups.Get("defined(VK_KHR_discard_rectangles) && VK_KHR_DISCARD_RECTANGLES_SPEC_VERSION >= 3")
	if group == nil || len(group.Commands) != 1 || group.Commands[0] != "vkCmdSetDiscardRectangleEnableKHR" {
		t.Fatalf("Expected alias gated by its own entry, got %v", idx.Groups.Keys())
	}
	if idx.Groups.Get("defined(VK_KHR_discard_rectangles)") != nil {
		t.Errorf("Expected no ungated group for the gated alias")
	}
}

func TestIndexZeroVersionDisablesGate(t *testing.T) {
	options := testOptions(false)
	options.CommandVersions["vkCmdSetDiscardRectangleEnableEXT"] = 0
	idx := NewIndex(parseFixture(t), options)

	for _, key := range idx.Groups.Keys() {
		if strings.Contains(key, "SPEC_VERSION") {
			t.Errorf("Unexpected gated group %s", key)
		}
	}

	group := idx.Groups.Get("defined(VK_EXT_discard_rectangles)")
	if group == nil || len(group.Commands) != 2 || group.Commands[1] != "vkCmdSetDiscardRectangleEnableEXT" {
		t.Errorf("Expected gate-free command in the plain group, got %v", group)
	}
}
