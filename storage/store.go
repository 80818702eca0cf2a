package storage

import "errors"

// ErrNotFound key不存在
var ErrNotFound = errors.New("storage: key not found")

// Store key -> JSON 持久化端口，等价于浏览器端的localStorage。
// 所有实现都是同步写入，无批量、无事务。
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed 返回按前缀隔离的Store，用于按设备划分状态空间
func Prefixed(s Store, prefix string) Store {
	return &prefixed{inner: s, prefix: prefix}
}

func (p *prefixed) Read(key string) ([]byte, error) {
	return p.inner.Read(p.prefix + key)
}

func (p *prefixed) Write(key string, value []byte) error {
	return p.inner.Write(p.prefix+key, value)
}

func (p *prefixed) Delete(key string) error {
	return p.inner.Delete(p.prefix + key)
}
