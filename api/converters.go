package api

import (
	"shadowWisper/services/character"
	"shadowWisper/services/chat"
	"shadowWisper/services/quest"
)

func toCharacter(req CreateCharacterRequest) *character.Character {
	return &character.Character{
		Name:        req.Name,
		Attributes:  req.Attributes,
		SkillPoints: req.SkillPoints,
		Equipment:   req.Equipment,
		Backstory:   req.Backstory,
		Metatype:    req.Metatype,
		Gender:      req.Gender,
		Karma:       req.Karma,
		Essence:     req.Essence,
	}
}

func toCharacterUpdate(req UpdateCharacterRequest) character.Update {
	return character.Update{
		Name:        req.Name,
		Attributes:  req.Attributes,
		SkillPoints: req.SkillPoints,
		Equipment:   req.Equipment,
		Backstory:   req.Backstory,
		Metatype:    req.Metatype,
		Gender:      req.Gender,
		Karma:       req.Karma,
		Essence:     req.Essence,
	}
}

func toQuest(req CreateQuestRequest) *quest.Quest {
	return &quest.Quest{
		Title:                req.Title,
		Description:          req.Description,
		Status:               quest.Status(req.Status),
		Reward:               req.Reward,
		CreatorDisplayName:   req.CreatorDisplayName,
		AssignedCharacterIDs: req.AssignedCharacterIDs,
		Location:             req.Location,
		PersonalNotes:        req.PersonalNotes,
	}
}

func toQuestUpdate(req UpdateQuestRequest) quest.Update {
	return quest.Update{
		Title:         req.Title,
		Description:   req.Description,
		Status:        quest.Status(req.Status),
		Reward:        req.Reward,
		Location:      req.Location,
		PersonalNotes: req.PersonalNotes,
	}
}

func toQuestView(q quest.Quest) QuestView {
	return QuestView{
		ID:                   q.ID,
		Title:                q.Title,
		Description:          q.Description,
		Status:               string(q.Status),
		CreatedAt:            q.CreatedAt,
		UserID:               q.UserID,
		Reward:               q.Reward,
		CreatorDisplayName:   q.CreatorDisplayName,
		AssignedCharacterIDs: q.AssignedCharacterIDs,
		ImageURLs:            q.ImageURLs,
		Location:             q.Location,
		PersonalNotes:        q.PersonalNotes,
	}
}

func toQuestViews(quests []quest.Quest) []QuestView {
	views := make([]QuestView, 0, len(quests))
	for _, q := range quests {
		views = append(views, toQuestView(q))
	}
	return views
}

func toMessageView(msg chat.ChatMessage, participants []string) MessageView {
	return MessageView{
		ID:             msg.ID,
		SenderID:       msg.SenderID,
		Text:           msg.Text,
		CreatedAt:      msg.CreatedAt,
		ReadBy:         msg.ReadBy,
		ReadByAll:      chat.ReadByAll(msg, participants),
		PendingReaders: chat.PendingReaders(msg, participants),
	}
}

func toMessageViews(messages []chat.ChatMessage, participants []string) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, toMessageView(msg, participants))
	}
	return views
}
