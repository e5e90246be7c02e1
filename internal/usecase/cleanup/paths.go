package cleanup

import "strings"

// CollectPaths は引数から削除対象のパスを取り出し、末尾のパス区切り文字を取り除きます
func CollectPaths(args []string) []string {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		paths = append(paths, strings.TrimRight(arg, `\/`))
	}
	return paths
}
