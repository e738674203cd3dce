package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/gofiber/fiber/v2/log"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init prepares the generator for the given node number. Calling GenerateID
// without Init uses node 1.
func Init(nodeID int64) {
	nodeOnce.Do(func() {
		var err error
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			log.Fatalf("Failed to init Snowflake: %v", err)
		}
	})
}

func GenerateID() int64 {
	Init(1)
	return node.Generate().Int64()
}
