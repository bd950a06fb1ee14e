package catalog

import "drills/pkg/drill"

// memoryDrills are prose-only: the source material defines these concepts
// comparatively without implementing them, so there is nothing to run.
func memoryDrills() []drill.Drill {
	return []drill.Drill{
		{
			ID:       "memory/sharing",
			Topic:    drill.TopicMemory,
			Question: "When do concurrent tasks share memory, and when do they not?",
			Answer: "Threads of one process (goroutines in Go) share the process " +
				"address space, which makes communication cheap but requires " +
				"synchronization. Separate processes each get their own memory and " +
				"must communicate explicitly. Shared-memory concurrency suits " +
				"I/O-bound work; separate processes suit CPU-bound work that must " +
				"not contend on one runtime.",
		},
		{
			ID:       "memory/cleanup",
			Topic:    drill.TopicMemory,
			Question: "Who releases a resource acquired inside a function?",
			Answer: "The acquiring scope. Pair every acquisition with a deferred " +
				"release so the resource is freed when the enclosing function exits, " +
				"whether normally or through an error.",
		},
	}
}
