package extension

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/sdkgen/utility/condition"
	"go.scnd.dev/open/sdkgen/utility/fragment"
	"go.scnd.dev/open/sdkgen/utility/registry"
)

const (
	BlockStaticPfn   = "STATIC_PFN"
	BlockLoadProc    = "LOAD_PROC"
	BlockDeclare     = "DECLARE"
	BlockDefine      = "DEFINE"
	BlockVersionInfo = "VERSION_INFO"
)

type Kind string

const (
	KindDevice   Kind = "device"
	KindInstance Kind = "instance"
	KindGlobal   Kind = "global"
)

type Emission struct {
	Blocks *fragment.Blocks
	Counts map[Kind]int
}

// Emit renders the guarded code blocks of every non-excluded group and the version banner.
func Emit(reg *registry.Registry, index *Index, options *Options) (*Emission, error) {
	emission := &Emission{
		Blocks: fragment.NewBlocks(BlockStaticPfn, BlockLoadProc, BlockDeclare, BlockDefine),
		Counts: make(map[Kind]int),
	}
	types := reg.TypeIndex(options.Api)
	commands := reg.CommandIndex(options.Api)

	for _, key := range index.Groups.Keys() {
		if options.Excludes[key] {
			continue
		}

		emission.Blocks.Open(key)
		emission.Blocks.Get(BlockDefine).Write("#define " + options.DefinePrefix + condition.Primary(key) + "\n")

		for _, name := range index.Groups.Get(key).Sorted() {
			command, err := commands.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", condition.Strip(key), err)
			}

			kind := Classify(types, command, index.Instance[name])
			emission.Counts[kind]++

			emission.Blocks.Get(BlockDeclare).Write(Declaration(command, name, options))
			emission.Blocks.Get(BlockLoadProc).Write(LoadProc(kind, name, options))
			emission.Blocks.Get(BlockStaticPfn).Write(StaticPfn(name, options))
		}

		emission.Blocks.Close(condition.Strip(key))
	}

	emission.Blocks.Get(BlockVersionInfo).Write(VersionInfo(reg.HeaderVersion(options.Api)))

	return emission, nil
}

// Classify decides which proc address loader resolves the command from its first parameter.
func Classify(types *registry.TypeIndex, command *registry.Command, instance bool) Kind {
	first := command.FirstParamType()
	if types.IsDescendant(first, "VkDevice") && !instance {
		return KindDevice
	}
	if types.IsDescendant(first, "VkInstance") {
		return KindInstance
	}
	return KindGlobal
}

func Declaration(command *registry.Command, name string, options *Options) string {
	returnType := command.ReturnType()

	builder := new(strings.Builder)
	builder.WriteString("VKAPI_ATTR " + returnType + " VKAPI_CALL " + name + "(\n")
	builder.WriteString("\t" + strings.Join(command.Declarations(options.Api), ", \n\t") + ") \n")
	builder.WriteString("{ \n  ")
	if returnType != "void" {
		builder.WriteString("return ")
	}
	builder.WriteString(options.PointerPrefix + name + "(" + strings.Join(command.Arguments(options.Api), ", ") + "); \n")
	builder.WriteString("}\n")

	return builder.String()
}

func LoadProc(kind Kind, name string, options *Options) string {
	switch kind {
	case KindDevice:
		return "  " + options.PointerPrefix + name + " = (PFN_" + name + ")getDeviceProcAddr(device, \"" + name + "\");\n"
	case KindInstance:
		return "  " + options.PointerPrefix + name + " = (PFN_" + name + ")getInstanceProcAddr(instance, \"" + name + "\");\n"
	}
	return ""
}

func StaticPfn(name string, options *Options) string {
	return "static PFN_" + name + " " + options.PointerPrefix + name + "= 0;\n"
}

func VersionInfo(version string) string {
	return "// Generated using Vulkan " + version + "\n"
}
