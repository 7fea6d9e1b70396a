package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

// AuthMiddleware resolves the bearer token into the account and the
// ticket it was minted from, rejecting the request otherwise.
func AuthMiddleware(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	user, ticket, err := services.Authenticate(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	c.Locals("user", user)
	c.Locals("ticket", ticket)

	return c.Next()
}

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
			auth.Get("/logout", AuthMiddleware, doLogout)
			auth.Get("/logoutAll", AuthMiddleware, doLogoutAll)
			auth.Post("/checkpassword", AuthMiddleware, checkPassword)
		}

		password := api.Group("/password").Name("Password API")
		{
			password.Post("/email", requestPasswordReset)
			password.Post("/checktoken", checkPasswordResetToken)
			password.Post("/reset", resetPassword)
		}

		user := api.Group("/user", AuthMiddleware).Name("User API")
		{
			user.Get("/", getMe)
			user.Put("/edit", editProfile)
			user.Put("/password", changePassword)
			user.Put("/updatepf", updateAvatar)
			user.Get("/invites", listMyInvites)
			user.Post("/follow/:userId", followUser)
			user.Post("/unfollow/:userId", unfollowUser)
			user.Get("/follower/:userId", listUserFollowers)
			user.Get("/following/:userId", listUserFollowing)
			user.Get("/:userId", getUser)
		}

		posts := api.Group("/posts", AuthMiddleware).Name("Posts API")
		{
			posts.Get("/", listPosts)
			posts.Get("/me", listMyPosts)
			posts.Get("/latest", listLatestPosts)
			posts.Get("/highlighted", listHighlightedPosts)
			posts.Get("/user/:userId", listUserPosts)
			posts.Get("/group/:groupId", listGroupPosts)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)
			posts.Get("/:postId/related", listRelatedPosts)
			posts.Post("/:postId/like", likePost)
			posts.Post("/:postId/unlike", unlikePost)
			posts.Post("/:postId/save", savePost)
			posts.Post("/:postId/report", reportPost)
			posts.Get("/:postId/comments", listComments)
			posts.Post("/:postId/comments", createComment)
		}

		api.Delete("/comments/:commentId", AuthMiddleware, deleteComment)

		groups := api.Group("/groups", AuthMiddleware).Name("Groups API")
		{
			groups.Get("/", listJoinedGroups)
			groups.Get("/owned", listOwnedGroups)
			groups.Post("/", createGroup)
			groups.Get("/:groupId", getGroup)
			groups.Put("/:groupId", editGroup)
			groups.Delete("/:groupId", deleteGroup)
			groups.Post("/:groupId/transfer", transferGroupOwnership)
			groups.Post("/:groupId/join", joinGroup)
			groups.Post("/:groupId/leave", leaveGroup)

			groups.Get("/:groupId/members", listGroupMembers)
			groups.Get("/:groupId/members/others", listNonMembers)
			groups.Put("/:groupId/members/:memberId/role", editMemberRole)
			groups.Post("/:groupId/members/:memberId/promote", promoteMember)
			groups.Post("/:groupId/members/:memberId/demote", demoteMember)
			groups.Delete("/:groupId/members/:memberId", removeMember)

			groups.Get("/:groupId/invites", listGroupInvites)
			groups.Post("/:groupId/invites", createInvite)
			groups.Delete("/:groupId/invites/:userId", cancelInviteByUser)

			groups.Get("/:groupId/requests", listGroupRequests)
			groups.Post("/:groupId/requests", toggleRequest)
		}

		api.Post("/invites/:inviteId/accept", AuthMiddleware, acceptInvite)
		api.Delete("/invites/:inviteId", AuthMiddleware, cancelInvite)
		api.Post("/requests/:requestId/accept", AuthMiddleware, acceptRequest)
		api.Delete("/requests/:requestId", AuthMiddleware, cancelRequest)

		folders := api.Group("/folders", AuthMiddleware).Name("Folders API")
		{
			folders.Get("/", listFolders)
			folders.Post("/", createFolder)
			folders.Get("/post/:postId", listFoldersForPost)
			folders.Get("/:folderId/posts", listSavedPosts)
			folders.Put("/:folderId", editFolder)
			folders.Delete("/:folderId", deleteFolder)
		}

		tags := api.Group("/tags", AuthMiddleware).Name("Tags API")
		{
			tags.Get("/", listTags)
			tags.Get("/:tagId", getTag)
		}

		search := api.Group("/search", AuthMiddleware).Name("Search API")
		{
			search.Get("/users", searchUsers)
			search.Get("/groups", searchGroups)
			search.Get("/posts", searchPosts)
		}

		random := api.Group("/random", AuthMiddleware).Name("Random API")
		{
			random.Get("/users", randomUsers)
			random.Get("/groups", randomGroups)
			random.Get("/posts", randomPosts)
		}
	}
}
