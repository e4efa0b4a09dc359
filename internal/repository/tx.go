package repository

import "gorm.io/gorm"

// TxManager 跨仓储事务
// 各仓储通过 WithTx(tx) 绑定到同一事务
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 在事务中执行 fn，fn 返回错误时回滚
func (m *TxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
