package handlers

import "todo-service/app/server/models"

type userInfo struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
}

func newUserInfo(user *models.User) userInfo {
	return userInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsActive:  user.IsActive,
	}
}

type todoInfo struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     uint   `json:"owner_id"`
}

func newTodoInfo(todo *models.Todo) todoInfo {
	return todoInfo{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Complete:    todo.Complete,
		OwnerID:     todo.OwnerID,
	}
}

func newTodoInfoList(todos []models.Todo) []todoInfo {
	res := []todoInfo{}
	for i := range todos {
		res = append(res, newTodoInfo(&todos[i]))
	}
	return res
}
