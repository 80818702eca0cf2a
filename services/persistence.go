package services

import (
	"encoding/json"
	"errors"

	"MedzenGo/config"
	"MedzenGo/storage"
)

// 各集合的存储key，与老版本web端localStorage保持一致
const (
	trackersKey     = "medzen-trackers"
	goalsKey        = "medzen-goals"
	customGoalsKey  = "medzen-custom-goals"
	progressLogKey  = "medzen-progress-log"
	chatsKey        = "medzen-chats"
	activeChatIDKey = "medzen-active-chat-id"
	medicationsKey  = "medzen-medications"
	symptomsKey     = "medzen-symptoms"
)

// load 读取并解析一个JSON集合。key不存在或数据损坏都按缺失处理，
// 返回false，由调用方回退到默认值，不向用户传播错误。
func load(store storage.Store, key string, out interface{}) bool {
	data, err := store.Read(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			config.Logger.Errorw("读取存储失败", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		config.Logger.Errorw("存储数据损坏，回退默认值", "key", key, "error", err)
		return false
	}
	return true
}

// save 每次变更后整体写回，无批量、无事务
func save(store storage.Store, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		config.Logger.Errorw("序列化存储数据失败", "key", key, "error", err)
		return
	}
	if err := store.Write(key, data); err != nil {
		config.Logger.Errorw("写入存储失败", "key", key, "error", err)
	}
}
