// Command walkthrough embeds every container of the datastruct package
// and logs what each of them does with a small, fixed data set.
package main

import (
	"context"
	"errors"
	"os"

	"go.llib.dev/containers/pkg/datastruct"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const BucketCountEnvKey = "WALKTHROUGH_BUCKET_COUNT"

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "walkthrough"))
	err := Main(ctx, &logging.Logger{Out: os.Stdout})
	if err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
	}
}

func Main(ctx context.Context, log *logging.Logger) error {
	bucketCount, _, err := env.Lookup[int](BucketCountEnvKey, env.DefaultValue("7"))
	if err != nil {
		return err
	}

	walkStack(ctx, log)
	walkQueue(ctx, log)
	if err := walkLinkedList(ctx, log); err != nil {
		return err
	}
	walkBinaryTree(ctx, log)
	if err := walkHashTable(ctx, log, bucketCount); err != nil {
		return err
	}
	walkGraph(ctx, log)
	return nil
}

func walkStack(ctx context.Context, log *logging.Logger) {
	ctx = logging.ContextWith(ctx, logging.Field("container", "stack"))

	var stack datastruct.Stack[string]
	stack.Push("🍕")
	stack.Push("🌮")
	top, _ := stack.Last()
	popped, _ := stack.Pop()
	log.Info(ctx, "stack popped",
		logging.Field("top", top),
		logging.Field("popped", popped),
		logging.Field("len", stack.Len()))
}

func walkQueue(ctx context.Context, log *logging.Logger) {
	ctx = logging.ContextWith(ctx, logging.Field("container", "queue"))

	var queue datastruct.Queue[string]
	for _, v := range []string{"first", "next", "last"} {
		queue.Enqueue(v)
	}
	var order []string
	for {
		v, ok := queue.Dequeue()
		if !ok {
			break
		}
		order = append(order, v)
	}
	log.Info(ctx, "queue drained", logging.Field("order", order))
}

func walkLinkedList(ctx context.Context, log *logging.Logger) error {
	ctx = logging.ContextWith(ctx, logging.Field("container", "linked_list"))

	var ll datastruct.LinkedList[string]
	ll.Append("🍕", "🌮")
	ll.Prepend("🥗")
	if err := ll.InsertAfter("🍕", "🍔"); err != nil {
		return err
	}
	if err := ll.InsertAfter("🍟", "🧀"); err != nil {
		if !errors.Is(err, datastruct.ErrNotFound) {
			return err
		}
		log.Warn(ctx, "insert after skipped", logging.ErrField(err))
	}
	ll.Remove("🥗")

	last, _ := ll.Last()
	log.Info(ctx, "linked list built",
		logging.Field("list", ll.String()),
		logging.Field("length", ll.Length()),
		logging.Field("last", last))
	return nil
}

func walkBinaryTree(ctx context.Context, log *logging.Logger) {
	ctx = logging.ContextWith(ctx, logging.Field("container", "binary_tree"))

	var bt datastruct.BinaryTree[int]
	for _, v := range []int{5, 7, 3, 1, 4, 9, 6} {
		bt.Insert(v)
	}
	if !bt.Insert(5) {
		log.Debug(ctx, "duplicate rejected", logging.Field("value", 5))
	}
	greatest, _ := bt.Max()
	log.Info(ctx, "binary tree built",
		logging.Field("size", bt.Size()),
		logging.Field("height", bt.Height()),
		logging.Field("max", greatest),
		logging.Field("in_order", bt.ToSlice()))
}

func walkHashTable(ctx context.Context, log *logging.Logger, bucketCount int) error {
	ctx = logging.ContextWith(ctx,
		logging.Field("container", "hash_table"),
		logging.Field("bucket_count", bucketCount))

	ht, err := datastruct.NewHashTable[int](bucketCount)
	if err != nil {
		return err
	}
	ht.Set("listen", 1)
	ht.Set("silent", 2)
	ht.Set("listen", 3)
	ht.Delete("enlist")

	listen, _ := ht.Lookup("listen")
	_, found := ht.Lookup("enlist")
	log.Info(ctx, "hash table filled",
		logging.Field("len", ht.Len()),
		logging.Field("listen", listen),
		logging.Field("enlist_found", found))
	return nil
}

func walkGraph(ctx context.Context, log *logging.Logger) {
	ctx = logging.ContextWith(ctx, logging.Field("container", "graph"))

	var g datastruct.Graph[string]
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("D", "A")

	log.Info(ctx, "graph wired",
		logging.Field("nodes", g.Nodes()),
		logging.Field("adjacency", g.ToMap()))
}
