package snowflake

import (
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
)

var node atomic.Pointer[snowflake.Node]

func init() {
	n, _ := snowflake.NewNode(1)
	node.Store(n)
}

// Init 按配置的节点号重建生成器，启动时调用一次
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	node.Store(n)
	return nil
}

// GenID 生成流水、浏览记录等行的主键
func GenID() uint64 {
	return uint64(node.Load().Generate().Int64())
}
