package mysql

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listCategoriesSQL = `
SELECT slug, description
FROM categories
ORDER BY seq
`

// Listing rows are assembled by reviewListQuery; this is the fixed part.
// LEFT JOIN keeps reviews without comments (comment_count = 0).
const listReviewsSelect = `
SELECT
  r.owner,
  r.title,
  r.review_id,
  r.category,
  r.review_img_url,
  r.created_at,
  r.designer,
  r.votes,
  COUNT(c.comment_id) AS comment_count
FROM reviews r
LEFT JOIN comments c
  ON c.review_id = r.review_id`

const listReviewsGroupBy = `
GROUP BY r.review_id`

const getReviewSQL = `
SELECT review_id, title, designer, owner, review_img_url, review_body, category, created_at, votes
FROM reviews
WHERE review_id = ?
`

const listCommentsSQL = `
SELECT comment_id, body, votes, author, review_id, created_at
FROM comments
WHERE review_id = ?
ORDER BY created_at DESC, comment_id DESC
`

const getCommentSQL = `
SELECT comment_id, body, votes, author, review_id, created_at
FROM comments
WHERE comment_id = ?
`

// -----------------------------------------------------------------------------
// WRITE QUERIES
// -----------------------------------------------------------------------------

const insertCommentSQL = `
INSERT INTO comments (body, review_id, author)
VALUES (?, ?, ?)
`

const incrementVotesSQL = `
UPDATE reviews
SET votes = votes + ?
WHERE review_id = ?
`
