package Trees

var sizePriorities = map[string]int{
	"Large":  1,
	"Medium": 2,
	"Small":  3,
}

// SizePriority maps a property size to a Hierarchy priority: Large 1,
// Medium 2, Small 3 and anything else 4. Hierarchy itself doesn't call it
// except for placeholder parents; callers may use any priority they like.
func SizePriority(size string) int {
	if p, ok := sizePriorities[size]; ok {
		return p
	}
	return 4
}
