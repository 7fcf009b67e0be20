package models

import "testing"

func TestGameItemCanMutate(t *testing.T) {
	uploader := "user_1"

	t.Run("owner of user item", func(t *testing.T) {
		item := GameItem{Source: SourceUser, UploaderID: &uploader}
		if !item.CanMutate("user_1") {
			t.Fatalf("expected owner to be allowed")
		}
	})

	t.Run("different principal", func(t *testing.T) {
		item := GameItem{Source: SourceUser, UploaderID: &uploader}
		if item.CanMutate("user_2") {
			t.Fatalf("expected foreign principal to be denied")
		}
	})

	t.Run("api-sourced item", func(t *testing.T) {
		item := GameItem{Source: SourceAPI, UploaderID: &uploader}
		if item.CanMutate("user_1") {
			t.Fatalf("expected api-sourced item to be read-only")
		}
	})

	t.Run("missing uploader", func(t *testing.T) {
		item := GameItem{Source: SourceUser}
		if item.CanMutate("user_1") {
			t.Fatalf("expected item without uploader to be denied")
		}
	})
}

func TestCommentCanModify(t *testing.T) {
	comment := Comment{UserID: "user_1"}
	if !comment.CanModify("user_1") {
		t.Fatalf("expected author to be allowed")
	}
	if comment.CanModify("user_2") {
		t.Fatalf("expected foreign principal to be denied")
	}
}
